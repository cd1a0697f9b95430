// Package client provides the HTTP adapter used by connectors. It wraps an
// HTTP client with the configured timeout and optional Basic auth header and
// executes single-attempt GET and POST requests.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for connector HTTP operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_requests_total",
		Help: "Total connector HTTP requests by method and status",
	}, []string{"method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "connector_request_duration_seconds",
		Help:    "Connector HTTP request duration in seconds by method",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"method"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connector_request_errors_total",
		Help: "Total connector request errors by class",
	}, []string{"class"})
)

// maxRedirects is the redirect limit after which a request is treated as a
// redirect loop.
const maxRedirects = 10

// Config holds the HTTP adapter configuration.
type Config struct {
	// Timeout is the overall request timeout.
	Timeout time.Duration

	// Username and Password enable a static Basic auth header on every
	// request when both are non-empty.
	Username string
	Password string
}

// Client is the HTTP adapter. Every request is a single attempt; there is no
// retry or backoff.
type Client struct {
	httpClient *http.Client
	basicAuth  string // precomputed Authorization header value, empty when disabled
	logger     zerolog.Logger
}

// New creates an HTTP adapter with the configured timeout and credentials.
func New(cfg Config, logger zerolog.Logger) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return ErrRedirectLoop
				}
				return nil
			},
		},
		logger: logger,
	}

	if cfg.Username != "" && cfg.Password != "" {
		creds := cfg.Username + ":" + cfg.Password
		c.basicAuth = "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
	}

	return c
}

// Get performs a single GET request.
//
// A transport failure is logged and returned as an error; the caller treats
// it as "no response". A non-2xx status is logged as an error but the
// response is still returned with a nil error: status handling is the
// caller's decision.
func (c *Client) Get(ctx context.Context, uri string) (*http.Response, error) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues("GET").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		class := classify(nil, err)
		errorsTotal.WithLabelValues(string(class)).Inc()
		requestsTotal.WithLabelValues("GET", "transport_error").Inc()
		c.logger.Error().Err(err).Str("uri", uri).Str("error_class", string(class)).
			Msg("GET request failed")
		return nil, &RequestError{Class: class, URI: uri, Err: err}
	}

	requestsTotal.WithLabelValues("GET", fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		class := classify(resp, nil)
		errorsTotal.WithLabelValues(string(class)).Inc()
		c.logger.Error().Str("uri", uri).Int("status", resp.StatusCode).
			Str("error_class", string(class)).Msg("GET returned non-success status")
	}

	return resp, nil
}

// PostJSON performs a single POST request with a JSON body and reports
// whether it succeeded. Success means status 200 or 204. Redirect loops,
// transport failures and any other status are logged and reported as false.
func (c *Client) PostJSON(ctx context.Context, uri string, body any) bool {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues("POST").Observe(time.Since(start).Seconds())
	}()

	payload, err := json.Marshal(body)
	if err != nil {
		c.logger.Error().Err(err).Str("uri", uri).Msg("Failed to serialize POST body")
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error().Err(err).Str("uri", uri).Msg("Failed to create POST request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		class := classify(nil, err)
		errorsTotal.WithLabelValues(string(class)).Inc()
		requestsTotal.WithLabelValues("POST", "transport_error").Inc()
		c.logger.Error().Err(err).Str("uri", uri).Str("error_class", string(class)).
			Msg("POST request failed")
		return false
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues("POST", fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		if class := classify(resp, nil); class != "" {
			errorsTotal.WithLabelValues(string(class)).Inc()
		}
		c.logger.Error().Str("uri", uri).Int("status", resp.StatusCode).
			Msg("POST returned non-success status")
		return false
	}

	return true
}

func (c *Client) applyHeaders(req *http.Request) {
	if c.basicAuth != "" {
		req.Header.Set("Authorization", c.basicAuth)
	}
}
