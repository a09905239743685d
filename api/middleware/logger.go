// Package middleware holds HTTP middleware for coalign-server.
//
// The teacher's own bioflow-server router referenced a
// middleware.Logger that was never defined anywhere in its tree — an
// import that would have failed to build. This implements it for
// real, in chi's own middleware idiom (wrap http.Handler, wrap
// ResponseWriter to capture status, log after ServeHTTP returns).
package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs method, path, status and duration for every request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Printf("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
