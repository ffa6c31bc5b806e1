package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sub-merger/internal/adapter"
	"github.com/MKhiriev/go-sub-merger/internal/merger"
	"github.com/MKhiriev/go-sub-merger/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing template", validators.ErrMissingTemplateURL, http.StatusBadRequest},
		{"invalid nodes wrapped", fmt.Errorf("validation: %w: bad scheme", validators.ErrInvalidNodesURL), http.StatusBadRequest},
		{"transport", fmt.Errorf("fetch nodes document: %w", adapter.ErrTransport), http.StatusInternalServerError},
		{"body too large", adapter.ErrBodyTooLarge, http.StatusInternalServerError},
		{"no node list", merger.ErrNoNodeList, http.StatusInternalServerError},
		{"template not object", merger.ErrTemplateNotObject, http.StatusInternalServerError},
		{"canceled", context.Canceled, http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
