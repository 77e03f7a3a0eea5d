package main

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bbernstein/linkstation/backend-go/internal/api"
	"github.com/bbernstein/linkstation/backend-go/internal/config"
	"github.com/bbernstein/linkstation/backend-go/internal/handler"
	"github.com/bbernstein/linkstation/backend-go/internal/linkstation"
	"github.com/rs/zerolog/log"
	"net/http"
	"sync"
)

var (
	lambdaStart        = lambda.Start // Allow mocking of lambda.Start in tests
	linkStationHandler *handler.LinkStationHandler
	setupOnce          sync.Once
	finderFactory      linkstation.FinderFactory = &linkstation.DefaultFinderFactory{}
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		log.Info().Str("env", cfg.Environment).Msg("Environment")

		finder, err := finderFactory.NewFinder()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize link station finder")
			return
		}

		linkStationHandler = handler.NewLinkStationHandler(finder)
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if linkStationHandler == nil {
		return api.Error("Handler not initialized", http.StatusInternalServerError)
	}
	return linkStationHandler.Respond(ctx, request)
}

func main() {
	lambdaStart(handleRequest)
}
