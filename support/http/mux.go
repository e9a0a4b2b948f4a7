// Package http provides the HTTP muxes used by binaries in this repository.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"

	"github.com/stellar/txrep/support/log"
)

// NewMux returns a new chi mux with request id assignment and request
// logging configured.
func NewMux(l *log.Entry) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(loggingMiddleware(l))
	return mux
}

// NewAPIMux returns a new mux with a permissive CORS policy layered on top,
// suitable for publicly exposed JSON endpoints.
func NewAPIMux(l *log.Entry) *chi.Mux {
	mux := NewMux(l)
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	mux.Use(c.Handler)
	return mux
}

func loggingMiddleware(l *log.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()
			next.ServeHTTP(ww, r)
			l.WithFields(log.F{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"duration": time.Since(started).String(),
				"req":      middleware.GetReqID(r.Context()),
			}).Info("http request")
		})
	}
}
