package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{})
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions tunes a new [HTTPClient]. Zero values keep resty's
// defaults: no timeout, no retries, resty's own redirect policy.
type HTTPClientOptions struct {
	// Timeout bounds a single request, retries excluded.
	Timeout time.Duration

	// RetryCount is the number of extra attempts after a failed request.
	RetryCount int

	// MaxRedirects caps followed redirects.
	MaxRedirects int

	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance configured
// from opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 15 * time.Second})
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/users")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.RetryCount > 0 {
		client.SetRetryCount(opts.RetryCount)
	}
	if opts.MaxRedirects > 0 {
		client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(opts.MaxRedirects))
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}
