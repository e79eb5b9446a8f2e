package dbl

import (
	"net/http"
	"time"

	"github.com/s0up4200/dblgo/dbl/endpoint"
)

const (
	// DefaultTimeout is the timeout of the default HTTP client
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent when no other user agent is configured
	DefaultUserAgent = "dblgo (https://github.com/s0up4200/dblgo)"
	// DefaultConcurrency bounds the fan-out of GetBots
	DefaultConcurrency = 5
)

// Doer performs HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient  Doer
	baseURL     string
	timeout     time.Duration
	userAgent   string
	concurrency int
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:     endpoint.Base,
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		concurrency: DefaultConcurrency,
	}
}

// WithHTTPClient sets the transport used for every request. It may be
// shared with other clients.
func WithHTTPClient(doer Doer) Option {
	return func(o *clientOptions) {
		o.httpClient = doer
	}
}

// WithBaseURL points the client at another API base, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// together with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithConcurrency bounds how many requests GetBots runs at once.
func WithConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
