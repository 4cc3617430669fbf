package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/iprody08/inquiry-service/pkg/logger"
)

// InfoClient fetches supplementary information from a downstream origin and
// relays the body untouched. The base URL already carries its trailing
// separator, appending the reference id forms the full request URL.
type InfoClient struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures an InfoClient
type Option func(*InfoClient)

// WithTimeout sets a per-request timeout. There is none by default, a hung
// origin stalls only the request waiting on it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *InfoClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *InfoClient) {
		c.httpClient = httpClient
	}
}

// InfoClients bundles the two downstream origins the service talks to
type InfoClients struct {
	Customer *InfoClient
	Product  *InfoClient
}

// NewInfoClient creates a client for one downstream origin
func NewInfoClient(baseURL string, opts ...Option) *InfoClient {
	c := &InfoClient{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: baseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch issues a GET for the given reference id and returns the raw response
// body. A non-2xx answer from the origin is an error.
func (c *InfoClient) Fetch(ctx context.Context, refID int64) (string, error) {
	url := c.baseURL + strconv.FormatInt(refID, 10)

	logger.Info(ctx).Str("url", url).Msg("Calling downstream service")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build downstream request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read downstream response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("downstream service returned status %d", resp.StatusCode)
	}

	return string(body), nil
}
