package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/bbernstein/linkstation/backend-go/internal/config"
	"github.com/bbernstein/linkstation/backend-go/internal/handler"
	"github.com/bbernstein/linkstation/backend-go/internal/invoke"
	"github.com/bbernstein/linkstation/backend-go/internal/linkstation"
	"github.com/bbernstein/linkstation/backend-go/internal/validation"
	"github.com/bbernstein/linkstation/backend-go/pkg/http/client"
	"github.com/rs/zerolog/log"
	"io"
	"os"
)

type options struct {
	file     string
	event    bool
	endpoint string
	function string
}

// lambdaRunnerFactory is swapped in tests so no AWS credentials are needed
var lambdaRunnerFactory = func(ctx context.Context, functionName string) (invoke.Runner, error) {
	lambdaClient, err := invoke.NewLambdaClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating Lambda client: %w", err)
	}
	return invoke.NewLambdaRunner(lambdaClient, functionName), nil
}

func parseOptions(cfg *config.Config, args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("findlink", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "file", "-", "request body file, - for stdin")
	fs.BoolVar(&opts.event, "event", false, "input is a full invocation event with a string body field")
	fs.StringVar(&opts.endpoint, "endpoint", cfg.EndpointURL, "URL of a deployed link station endpoint")
	fs.StringVar(&opts.function, "function", cfg.FunctionName, "name of the deployed Lambda function")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.endpoint != "" && opts.function != "" {
		return nil, fmt.Errorf("-endpoint and -function are mutually exclusive")
	}
	return opts, nil
}

func newRunner(ctx context.Context, cfg *config.Config, opts *options) (invoke.Runner, error) {
	switch {
	case opts.endpoint != "":
		httpClient := client.New(client.Options{
			Timeout:    cfg.HTTPTimeout,
			MaxRetries: cfg.MaxRetries,
		})
		return invoke.NewHTTPRunner(httpClient, opts.endpoint), nil
	case opts.function != "":
		return lambdaRunnerFactory(ctx, opts.function)
	default:
		return invoke.NewLocalRunner(handler.NewLinkStationHandler(linkstation.NewDefaultFinder())), nil
	}
}

func readInput(opts *options, stdin io.Reader) (string, error) {
	var (
		raw []byte
		err error
	)
	if opts.file == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(opts.file)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	if opts.event {
		return validation.ValidateEvent(raw)
	}
	return string(raw), nil
}

func run(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseOptions(cfg, args, stderr)
	if err != nil {
		return err
	}

	body, err := readInput(opts, stdin)
	if err != nil {
		return err
	}

	runner, err := newRunner(ctx, cfg, opts)
	if err != nil {
		return err
	}

	finding, err := runner.Find(ctx, body)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, finding)
	return err
}

func main() {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	if err := run(context.Background(), cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("findlink failed")
		os.Exit(1)
	}
}
