package api

import (
	"encoding/json"
	"fmt"
	"github.com/aws/aws-lambda-go/events"
	"github.com/bbernstein/linkstation/backend-go/internal/models"
	"github.com/bbernstein/linkstation/backend-go/internal/validation"
	"net/http"
)

type FindingResponse struct {
	Finding string `json:"finding"`
}

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewFindingResponse(finding string) *FindingResponse {
	return &FindingResponse{Finding: finding}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

func defaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    defaultHeaders(),
		Body:       string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    defaultHeaders(),
		Body:       string(body),
	}, nil
}

// ParseLinkStationRequest checks the shape of a request body and decodes it into
// the device position and the ordered list of candidate stations.
func ParseLinkStationRequest(body string) (models.Point, []models.LinkStation, error) {
	if err := validation.ValidateBody([]byte(body)); err != nil {
		return models.Point{}, nil, err
	}

	var req models.LinkStationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return models.Point{}, nil, fmt.Errorf("decoding link station request: %w", err)
	}

	return req.DevicePoint(), req.Stations(), nil
}
