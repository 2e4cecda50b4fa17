package datastreams

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the validated parameters every other component consumes:
// credentials, the REST and WebSocket base URLs, high-availability and
// reconnect tuning, and TLS/observability hooks.
type Config struct {
	// APIKey identifies the caller; sent verbatim as the Authorization
	// header value.
	APIKey string
	// APISecret is the HMAC signing key. Never logged.
	APISecret string
	// RestURL is the base URL for REST calls.
	RestURL string
	// WsURL is a comma-separated list of WebSocket origin URLs.
	WsURL string
	// WsHA enables multiplexing across every origin in WsURL instead of
	// connecting only to the first.
	WsHA bool
	// WsMaxReconnect caps reconnection attempts per connection.
	WsMaxReconnect int
	// InsecureSkipVerify disables TLS certificate verification. For local
	// and test environments only.
	InsecureSkipVerify bool
	// InspectHTTPResponse, if set, is invoked after every REST response
	// arrives, before the body is decoded.
	InspectHTTPResponse func(statusCode int, headers map[string][]string)
	// MetricsRegisterer, if set, causes the stream to additionally publish
	// its statistics as Prometheus metrics.
	MetricsRegisterer prometheus.Registerer
}

// Option customizes a Config during construction.
type Option func(*Config)

// WithWsHA enables or disables WebSocket high availability.
func WithWsHA(enabled bool) Option {
	return func(c *Config) { c.WsHA = enabled }
}

// WithWsMaxReconnect overrides the default reconnect attempt limit.
func WithWsMaxReconnect(n int) Option {
	return func(c *Config) { c.WsMaxReconnect = n }
}

// WithInsecureSkipVerify disables TLS verification. Intended for tests
// against a self-signed mock server.
func WithInsecureSkipVerify(enabled bool) Option {
	return func(c *Config) { c.InsecureSkipVerify = enabled }
}

// WithInspectHTTPResponse installs a response-inspection hook.
func WithInspectHTTPResponse(hook func(statusCode int, headers map[string][]string)) Option {
	return func(c *Config) { c.InspectHTTPResponse = hook }
}

// WithMetricsRegisterer opts the stream into publishing its statistics as
// Prometheus metrics against the given registerer.
func WithMetricsRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) { c.MetricsRegisterer = reg }
}

const defaultWsMaxReconnect = 5

// NewConfig validates and builds a Config. apiKey and apiSecret must be
// non-empty after trimming whitespace.
func NewConfig(apiKey, apiSecret, restURL, wsURL string, opts ...Option) (Config, error) {
	if strings.TrimSpace(apiKey) == "" {
		return Config{}, ErrEmptyAPIKey
	}
	if strings.TrimSpace(apiSecret) == "" {
		return Config{}, ErrEmptyAPISecret
	}

	c := Config{
		APIKey:         apiKey,
		APISecret:      apiSecret,
		RestURL:        restURL,
		WsURL:          wsURL,
		WsMaxReconnect: defaultWsMaxReconnect,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

// origins splits WsURL on commas and trims whitespace, producing the
// ordered origin list connection establishment iterates over.
func (c Config) origins() []string {
	parts := strings.Split(c.WsURL, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
