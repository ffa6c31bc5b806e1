package adapter

import "errors"

var (
	// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs.
	ErrInvalidURL = errors.New("invalid document url")
	// ErrTransport is returned when the request could not be sent or the
	// response could not be read.
	ErrTransport = errors.New("fetch request failed")
	// ErrUpstreamStatus is returned for any non-2xx response.
	ErrUpstreamStatus = errors.New("upstream returned non-success status")
	// ErrBodyTooLarge is returned when the body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("response body too large")
	// ErrDecode is returned when the body is not a single valid JSON value.
	ErrDecode = errors.New("response body is not valid JSON")
)
