package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sub-merger/internal/adapter"
	"github.com/MKhiriev/go-sub-merger/internal/merger"
	"github.com/MKhiriev/go-sub-merger/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMissingTemplateURL: http.StatusBadRequest,
	validators.ErrMissingNodesURL:    http.StatusBadRequest,
	validators.ErrInvalidTemplateURL: http.StatusBadRequest,
	validators.ErrInvalidNodesURL:    http.StatusBadRequest,
	validators.ErrUnsupportedType:    http.StatusBadRequest,
	validators.ErrUnknownField:       http.StatusBadRequest,

	adapter.ErrInvalidURL:     http.StatusInternalServerError,
	adapter.ErrTransport:      http.StatusInternalServerError,
	adapter.ErrUpstreamStatus: http.StatusInternalServerError,
	adapter.ErrBodyTooLarge:   http.StatusInternalServerError,
	adapter.ErrDecode:         http.StatusInternalServerError,

	merger.ErrNoNodeList:        http.StatusInternalServerError,
	merger.ErrTemplateNotObject: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
