package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-sub-merger/internal/logger"
)

// withLogging writes one access log line per request. Only the path is
// logged: query strings carry upstream URLs that may embed tokens.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("path", path).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
