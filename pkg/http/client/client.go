package client

import (
	"bytes"
	"context"
	"fmt"
	"github.com/rs/zerolog/log"
	"io"
	"net/http"
	"time"
)

type Response struct {
	StatusCode int
	Body       []byte
}

type Interface interface {
	Post(ctx context.Context, path string, body []byte) (*Response, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	PostFunc   func(ctx context.Context, path string, body []byte) (*Response, error)
}

var _ Interface = (*Client)(nil)

type Options struct {
	BaseURL string
	Timeout time.Duration
	// MaxRetries of zero disables retries; a negative value selects the default.
	MaxRetries int
	RetryDelay time.Duration
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	if opts.MaxRetries < 0 {
		opts.MaxRetries = 3
	}

	if opts.RetryDelay == 0 {
		opts.RetryDelay = 200 * time.Millisecond
	}

	return &Client{
		baseURL: opts.BaseURL,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
	}
}

// Post sends body as JSON. Transport errors and 5xx responses are retried up to
// maxRetries times with a linearly growing delay; the last outcome is returned.
func (c *Client) Post(ctx context.Context, path string, body []byte) (*Response, error) {
	if c.PostFunc != nil {
		return c.PostFunc(ctx, path, body)
	}

	var (
		resp *Response
		err  error
	)
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * c.retryDelay):
			}
			log.Debug().Int("attempt", attempt).Str("path", path).Msg("Retrying request")
		}

		resp, err = c.post(ctx, path, body)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}
		if ctx.Err() != nil {
			break
		}
	}

	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", path, err)
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*Response, error) {
	var fullURL string
	if c.baseURL == "" {
		fullURL = path // If no base URL, treat path as full URL
	} else {
		fullURL = c.baseURL + path // Otherwise combine them
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			return
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
