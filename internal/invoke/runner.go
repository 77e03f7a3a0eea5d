package invoke

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-lambda-go/events"
	"github.com/bbernstein/linkstation/backend-go/internal/api"
	"github.com/bbernstein/linkstation/backend-go/internal/handler"
	"github.com/bbernstein/linkstation/backend-go/pkg/http/client"
	"net/http"
)

// Runner turns a request body into a finding sentence, wherever the finder runs.
type Runner interface {
	Find(ctx context.Context, body string) (string, error)
}

// LocalRunner runs the finder in-process.
type LocalRunner struct {
	handler *handler.LinkStationHandler
}

func NewLocalRunner(h *handler.LinkStationHandler) *LocalRunner {
	return &LocalRunner{handler: h}
}

func (r *LocalRunner) Find(ctx context.Context, body string) (string, error) {
	response, err := r.handler.HandleRequest(ctx, events.APIGatewayProxyRequest{Body: body})
	if err != nil {
		return "", err
	}
	return decodeEnvelope(response.StatusCode, []byte(response.Body))
}

// HTTPRunner posts the body to a deployed API Gateway endpoint.
type HTTPRunner struct {
	client client.Interface
	path   string
}

func NewHTTPRunner(c client.Interface, path string) *HTTPRunner {
	return &HTTPRunner{client: c, path: path}
}

func (r *HTTPRunner) Find(ctx context.Context, body string) (string, error) {
	resp, err := r.client.Post(ctx, r.path, []byte(body))
	if err != nil {
		return "", fmt.Errorf("calling link station endpoint: %w", err)
	}
	return decodeEnvelope(resp.StatusCode, resp.Body)
}

// RemoteError is a non-200 answer from a deployed finder.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("link station finder returned %d: %s", e.StatusCode, e.Message)
}

func NewRemoteError(statusCode int, message string) *RemoteError {
	return &RemoteError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func decodeEnvelope(statusCode int, body []byte) (string, error) {
	if statusCode != http.StatusOK {
		var errorResp api.ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
			return "", NewRemoteError(statusCode, string(body))
		}
		return "", NewRemoteError(statusCode, errorResp.Error)
	}

	var findingResp api.FindingResponse
	if err := json.Unmarshal(body, &findingResp); err != nil {
		return "", fmt.Errorf("decoding finding response: %w", err)
	}
	return findingResp.Finding, nil
}
