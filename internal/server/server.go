package server

import (
	"context"
	"encoding/base64"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"io"
	"net/http"
	"os"
	"unicode/utf8"
)

// ProxyHandler is anything that answers API Gateway proxy requests.
type ProxyHandler interface {
	Respond(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)
}

const (
	FinderPath = "/link-stations/most-suitable"
	HealthPath = "/health"
)

// NewRouter exposes the proxy handler over plain HTTP for local development.
func NewRouter(proxy ProxyHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc(HealthPath, healthHandler).Methods(http.MethodGet)
	r.Handle(FinderPath, proxyHandler(proxy)).Methods(http.MethodPost)

	return r
}

// NewHandler wraps the router with request logging and CORS.
func NewHandler(proxy ProxyHandler) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.LoggingHandler(os.Stdout, cors(NewRouter(proxy)))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func proxyHandler(proxy ProxyHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request, err := ToProxyRequest(r)
		if err != nil {
			log.Error().Err(err).Msg("Failed to read request body")
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		response, err := proxy.Respond(r.Context(), request)
		if err != nil {
			log.Error().Err(err).Str("request_id", request.RequestContext.RequestID).Msg("Proxy handler failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		WriteProxyResponse(w, response)
	})
}

// ToProxyRequest converts an HTTP request into the event API Gateway would deliver.
func ToProxyRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}

	headers := make(map[string]string, len(r.Header))
	for key := range r.Header {
		headers[key] = r.Header.Get(key)
	}

	query := make(map[string]string, len(r.URL.Query()))
	for key := range r.URL.Query() {
		query[key] = r.URL.Query().Get(key)
	}

	requestID := r.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	request := events.APIGatewayProxyRequest{
		Resource:              r.URL.Path,
		Path:                  r.URL.Path,
		HTTPMethod:            r.Method,
		Headers:               headers,
		QueryStringParameters: query,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  requestID,
			Stage:      "local",
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
		},
	}

	if utf8.Valid(body) {
		request.Body = string(body)
	} else {
		request.Body = base64.StdEncoding.EncodeToString(body)
		request.IsBase64Encoded = true
	}

	return request, nil
}

// WriteProxyResponse copies a proxy response onto an HTTP response writer.
func WriteProxyResponse(w http.ResponseWriter, response events.APIGatewayProxyResponse) {
	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}

	body := []byte(response.Body)
	if response.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(response.Body)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode response body")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		body = decoded
	}

	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
