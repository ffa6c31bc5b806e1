package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestTimeout_SetsDeadline(t *testing.T) {
	var deadline time.Time
	var ok bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	})

	before := time.Now()
	withRequestTimeout(time.Second)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/merge", nil))

	require.True(t, ok)
	assert.WithinDuration(t, before.Add(time.Second), deadline, 100*time.Millisecond)
}

func TestWithRequestTimeout_CancelsSlowWork(t *testing.T) {
	var ctxErr error

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			ctxErr = r.Context().Err()
		case <-time.After(2 * time.Second):
		}
	})

	withRequestTimeout(20*time.Millisecond)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/merge", nil))

	assert.ErrorIs(t, ctxErr, context.DeadlineExceeded)
}
