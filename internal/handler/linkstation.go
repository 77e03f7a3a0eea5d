package handler

import (
	"context"
	"fmt"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/bbernstein/linkstation/backend-go/internal/api"
	"github.com/bbernstein/linkstation/backend-go/internal/linkstation"
	"github.com/bbernstein/linkstation/backend-go/internal/validation"
	"github.com/rs/zerolog/log"
	"net/http"
)

type LinkStationHandler struct {
	finder linkstation.Finder
}

func NewLinkStationHandler(finder linkstation.Finder) *LinkStationHandler {
	return &LinkStationHandler{
		finder: finder,
	}
}

// HandleRequest answers a most suitable link station query. Invalid input is returned
// as a *validation.InvalidInputError; turning it into a status code is up to the host.
func (h *LinkStationHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body, err := validation.ValidateRequest(request)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	device, stations, err := api.ParseLinkStationRequest(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	finding, err := h.finder.FindMostSuitable(ctx, device, stations)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("finding most suitable link station: %w", err)
	}

	sentence, err := linkstation.FormatFinding(device, finding)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("formatting finding: %w", err)
	}

	log.Ctx(ctx).Info().Str("finding", sentence).Msg("Handled link station request")

	return api.Success(api.NewFindingResponse(sentence))
}

// Respond is HandleRequest for hosts that must always answer with an envelope:
// invalid input becomes a 400 carrying the validation message, anything else a 500.
func (h *LinkStationHandler) Respond(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = withRequestLogger(ctx, request)

	response, err := h.HandleRequest(ctx, request)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return response, nil
}

func errorResponse(ctx context.Context, err error) (events.APIGatewayProxyResponse, error) {
	if invalidInputErr, ok := validation.AsInvalidInput(err); ok {
		log.Ctx(ctx).Warn().Err(err).Msg("Rejected invalid link station request")
		return api.Error(invalidInputErr.Message, http.StatusBadRequest)
	}

	log.Ctx(ctx).Error().Err(err).Msg("Link station request failed")
	return api.Error("Internal Server Error", http.StatusInternalServerError)
}

func withRequestLogger(ctx context.Context, request events.APIGatewayProxyRequest) context.Context {
	requestID := request.RequestContext.RequestID
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}

	logger := log.With().Str("request_id", requestID).Logger()
	return logger.WithContext(ctx)
}
