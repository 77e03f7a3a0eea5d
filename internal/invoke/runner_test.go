package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/bbernstein/linkstation/backend-go/internal/api"
	"github.com/bbernstein/linkstation/backend-go/internal/handler"
	"github.com/bbernstein/linkstation/backend-go/internal/linkstation"
	"github.com/bbernstein/linkstation/backend-go/internal/validation"
	"github.com/bbernstein/linkstation/backend-go/pkg/http/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

const foundBody = `{"device": {"coordinates": {"x": 0,"y": 0}},"linkStations": [{"coordinates": {"x": 20,"y": 20},"reach": 1}, {"coordinates": {"x": 10,"y": 0},"reach": 12}]}`

// mockLambdaClient implements LambdaAPI interface for testing
type mockLambdaClient struct {
	invokeFn func(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

func (m *mockLambdaClient) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	return m.invokeFn(ctx, params, optFns...)
}

func newHandler() *handler.LinkStationHandler {
	return handler.NewLinkStationHandler(linkstation.NewDefaultFinder())
}

func TestLocalRunner(t *testing.T) {
	runner := NewLocalRunner(newHandler())

	finding, err := runner.Find(context.Background(), foundBody)
	require.NoError(t, err)
	assert.Equal(t, "Best link station for point 0,0 is 10,0 with power 4.0", finding)

	_, err = runner.Find(context.Background(), `{"device": {"coordinates": {"x": 0,"y": 0}}}`)
	require.Error(t, err)
	assert.True(t, validation.IsInvalidInput(err))
	assert.Equal(t, validation.MsgInvalidLinkStationsList, err.Error())
}

func TestHTTPRunner(t *testing.T) {
	tests := []struct {
		name        string
		postFn      func(ctx context.Context, path string, body []byte) (*client.Response, error)
		wantFinding string
		wantStatus  int
		wantMessage string
		wantErr     bool
	}{
		{
			name: "finding returned",
			postFn: func(ctx context.Context, path string, body []byte) (*client.Response, error) {
				response, err := newHandler().Respond(ctx, events.APIGatewayProxyRequest{Body: string(body)})
				if err != nil {
					return nil, err
				}
				return &client.Response{StatusCode: response.StatusCode, Body: []byte(response.Body)}, nil
			},
			wantFinding: "Best link station for point 0,0 is 10,0 with power 4.0",
		},
		{
			name: "validation error returned",
			postFn: func(ctx context.Context, path string, body []byte) (*client.Response, error) {
				errResp, _ := api.Error(validation.MsgInvalidDeviceX, http.StatusBadRequest)
				return &client.Response{StatusCode: errResp.StatusCode, Body: []byte(errResp.Body)}, nil
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: validation.MsgInvalidDeviceX,
		},
		{
			name: "gateway error with plain body",
			postFn: func(ctx context.Context, path string, body []byte) (*client.Response, error) {
				return &client.Response{StatusCode: http.StatusBadGateway, Body: []byte("Bad Gateway")}, nil
			},
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Bad Gateway",
		},
		{
			name: "transport failure",
			postFn: func(ctx context.Context, path string, body []byte) (*client.Response, error) {
				return nil, assert.AnError
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := client.New(client.Options{})
			c.PostFunc = tt.postFn
			runner := NewHTTPRunner(c, "/link-stations/most-suitable")

			finding, err := runner.Find(context.Background(), foundBody)
			switch {
			case tt.wantErr:
				require.Error(t, err)
				assert.ErrorIs(t, err, assert.AnError)
			case tt.wantStatus != 0:
				var remoteErr *RemoteError
				require.True(t, errors.As(err, &remoteErr))
				assert.Equal(t, tt.wantStatus, remoteErr.StatusCode)
				assert.Equal(t, tt.wantMessage, remoteErr.Message)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantFinding, finding)
			}
		})
	}
}

func TestLambdaRunner(t *testing.T) {
	t.Run("successful invocation", func(t *testing.T) {
		mock := &mockLambdaClient{
			invokeFn: func(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
				assert.Equal(t, "linkstation-finder", aws.ToString(params.FunctionName))

				var request events.APIGatewayProxyRequest
				require.NoError(t, json.Unmarshal(params.Payload, &request))
				assert.Equal(t, foundBody, request.Body)

				response, err := newHandler().Respond(ctx, request)
				require.NoError(t, err)
				payload, err := json.Marshal(response)
				require.NoError(t, err)
				return &lambda.InvokeOutput{StatusCode: 200, Payload: payload}, nil
			},
		}

		finding, err := NewLambdaRunner(mock, "linkstation-finder").Find(context.Background(), foundBody)
		require.NoError(t, err)
		assert.Equal(t, "Best link station for point 0,0 is 10,0 with power 4.0", finding)
	})

	t.Run("function error", func(t *testing.T) {
		mock := &mockLambdaClient{
			invokeFn: func(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
				return &lambda.InvokeOutput{
					StatusCode:    200,
					FunctionError: aws.String("Unhandled"),
					Payload:       []byte(`{"errorMessage":"Invalid reach specified","errorType":"InvalidInputError"}`),
				}, nil
			},
		}

		_, err := NewLambdaRunner(mock, "linkstation-finder").Find(context.Background(), foundBody)
		var functionErr *FunctionError
		require.True(t, errors.As(err, &functionErr))
		assert.Equal(t, "InvalidInputError", functionErr.Type)
		assert.Equal(t, "Invalid reach specified", functionErr.Message)
	})

	t.Run("invoke failure", func(t *testing.T) {
		mock := &mockLambdaClient{
			invokeFn: func(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
				return nil, assert.AnError
			},
		}

		_, err := NewLambdaRunner(mock, "linkstation-finder").Find(context.Background(), foundBody)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
