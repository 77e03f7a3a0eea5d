package invoke

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/rs/zerolog/log"
	"os"
)

// LambdaAPI defines the Lambda operations we need
type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// NewLambdaClient creates a new Lambda client based on environment
func NewLambdaClient(ctx context.Context) (*lambda.Client, error) {
	if endpoint := os.Getenv("LAMBDA_ENDPOINT"); endpoint != "" {
		// Local development configuration, e.g. SAM local start-lambda
		log.Debug().Str("endpoint", endpoint).Msg("Using local Lambda endpoint")
		cfg, err := config.LoadDefaultConfig(ctx,
			config.WithRegion("local"),
			config.WithClientLogMode(aws.LogRetries),
		)
		if err != nil {
			return nil, err
		}

		return lambda.NewFromConfig(cfg, func(o *lambda.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		}), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return lambda.NewFromConfig(cfg), nil
}

// FunctionError is an unhandled error raised inside the invoked function.
type FunctionError struct {
	Type    string
	Message string
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("lambda function error (%s): %s", e.Type, e.Message)
}

// LambdaRunner invokes the deployed function directly with an API Gateway proxy event.
type LambdaRunner struct {
	client       LambdaAPI
	functionName string
}

func NewLambdaRunner(c LambdaAPI, functionName string) *LambdaRunner {
	return &LambdaRunner{client: c, functionName: functionName}
}

func (r *LambdaRunner) Find(ctx context.Context, body string) (string, error) {
	payload, err := json.Marshal(events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	})
	if err != nil {
		return "", fmt.Errorf("encoding invocation payload: %w", err)
	}

	out, err := r.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(r.functionName),
		Payload:      payload,
	})
	if err != nil {
		return "", fmt.Errorf("invoking %s: %w", r.functionName, err)
	}

	if out.FunctionError != nil {
		var lambdaErr struct {
			ErrorMessage string `json:"errorMessage"`
			ErrorType    string `json:"errorType"`
		}
		if err := json.Unmarshal(out.Payload, &lambdaErr); err != nil {
			lambdaErr.ErrorMessage = string(out.Payload)
		}
		if lambdaErr.ErrorType == "" {
			lambdaErr.ErrorType = aws.ToString(out.FunctionError)
		}
		return "", &FunctionError{Type: lambdaErr.ErrorType, Message: lambdaErr.ErrorMessage}
	}

	var response events.APIGatewayProxyResponse
	if err := json.Unmarshal(out.Payload, &response); err != nil {
		return "", fmt.Errorf("decoding invocation result: %w", err)
	}
	return decodeEnvelope(response.StatusCode, []byte(response.Body))
}
