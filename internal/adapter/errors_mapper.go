package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// maxSnippetLen caps how much of an upstream error body ends up in messages.
const maxSnippetLen = 200

func mapHTTPError(statusCode int, body []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	snippet := bodySnippet(body)
	if snippet == "" {
		return fmt.Errorf("%w: http %d %s", ErrUpstreamStatus, statusCode, http.StatusText(statusCode))
	}

	return fmt.Errorf("%w: http %d %s: %s", ErrUpstreamStatus, statusCode, http.StatusText(statusCode), snippet)
}

func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if !utf8.ValidString(s) {
		return ""
	}

	if utf8.RuneCountInString(s) > maxSnippetLen {
		runes := []rune(s)
		s = string(runes[:maxSnippetLen]) + "..."
	}

	return s
}
