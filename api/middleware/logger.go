// Package middleware holds HTTP middleware shared across the pepalign
// API server.
package middleware

import (
	"net/http"
	"time"

	"github.com/snijderlab/pepalign-go/internal/obslog"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs each request's method, path, status, and duration, using
// chi's own WrapResponseWriter to observe the status code written by
// downstream handlers.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		reqID := chimiddleware.GetReqID(r.Context())
		obslog.Default.Request(r.Method, r.URL.Path, ww.Status(), reqID, time.Since(start).Milliseconds())
	})
}
