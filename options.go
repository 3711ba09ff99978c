package exeq

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the default API endpoint ([DefaultBaseURL]).
// The URL must include a scheme and a host; a path is kept as a prefix.
// A query string or fragment is rejected by [NewClient].
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request transport timeout.
// Zero disables it and leaves deadlines to the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for per-request debug events.
// The client is silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithAPI replaces the generated endpoint client. It is mainly useful for
// tests that exercise the client without a server.
func WithAPI(api API) Option {
	return func(c *Client) {
		c.api = api
	}
}
