// Package middleware provides HTTP middleware for the alnseq API server.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request: method, path, status, duration, and
// the chi request ID when present, in the style of chi's own
// middleware.Logger but routed through the standard log package the way
// the rest of this server logs.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		reqID := chimiddleware.GetReqID(r.Context())
		log.Printf("%s %s %s %d %dB %s reqid=%s",
			r.Method, r.URL.Path, r.Proto, ww.Status(), ww.BytesWritten(),
			time.Since(start), reqID)
	})
}
