// Package http builds the HTTP client used for YouTube Data API requests.
//
// Requests are never retried here: a failed request surfaces unchanged so a
// run aborts on the first error.
package http

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds HTTP client configuration.
type Config struct {
	// Timeout for individual HTTP requests
	Timeout time.Duration

	// User agent for HTTP requests
	UserAgent string

	// APIKey is sent as X-Goog-Api-Key when non-empty. Google API clients
	// ignore option.WithAPIKey once a custom HTTP client is supplied.
	APIKey string

	// Connection pool configuration
	Transport TransportConfig

	// Logger receives one debug record per request. Nil means slog.Default().
	Logger *slog.Logger
}

// TransportConfig configures the HTTP transport (connection pooling).
type TransportConfig struct {
	// MaxIdleConns is the maximum number of idle connections across all hosts.
	// Default: 10
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	// Default: 4
	MaxIdleConnsPerHost int

	// IdleConnTimeout is the maximum amount of time an idle connection can remain open.
	// Default: 90 seconds
	IdleConnTimeout time.Duration

	// ForceAttemptHTTP2 forces HTTP/2 for connections to servers that don't explicitly support it.
	// Default: true
	ForceAttemptHTTP2 bool
}

// DefaultUserAgent is sent when a request carries no User-Agent header.
const DefaultUserAgent = "ytscrape/1.0"

// DefaultConfig returns sensible defaults for HTTP client configuration.
func DefaultConfig() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		UserAgent: DefaultUserAgent,
		Transport: DefaultTransportConfig(),
	}
}

// DefaultTransportConfig returns sensible defaults for HTTP transport configuration.
// The walker issues requests sequentially, so the pool stays small.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}

// New creates an *http.Client with the given configuration.
func New(cfg *Config) *http.Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        cfg.Transport.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Transport.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.Transport.IdleConnTimeout,
		ForceAttemptHTTP2:   cfg.Transport.ForceAttemptHTTP2,
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &loggingTransport{
			base:      transport,
			userAgent: userAgent,
			apiKey:    cfg.APIKey,
			logger:    logger,
		},
	}
}

// APIKeyHeader carries the API key without exposing it in the URL.
const APIKeyHeader = "X-Goog-Api-Key"

// loggingTransport sets default headers and logs each round trip.
type loggingTransport struct {
	base      http.RoundTripper
	userAgent string
	apiKey    string
	logger    *slog.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	needUA := req.Header.Get("User-Agent") == ""
	needKey := t.apiKey != "" && req.Header.Get(APIKeyHeader) == ""
	if needUA || needKey {
		// RoundTrip must not modify the caller's request
		req = req.Clone(req.Context())
		if needUA {
			req.Header.Set("User-Agent", t.userAgent)
		}
		if needKey {
			req.Header.Set(APIKeyHeader, t.apiKey)
		}
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)

	// URL.Path only; a query string may carry an API key
	attrs := []any{
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"elapsed", elapsed,
	}
	if err != nil {
		t.logger.Debug("http request failed", append(attrs, "error", err)...)
		return nil, err
	}
	t.logger.Debug("http request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}
