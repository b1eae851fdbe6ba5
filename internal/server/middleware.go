package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// requestLogger logs one line per request through the util logger and
// makes the chi request ID available to handlers' loggers
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := util.ContextWithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		r = r.WithContext(ctx)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		util.LogContext(ctx).Debug("HTTP request",
			util.F("method", r.Method),
			util.F("path", r.URL.Path),
			util.F("status", status),
			util.F("bytes", ww.BytesWritten()),
			util.F("duration", time.Since(start).String()),
			util.F("remote", r.RemoteAddr),
		)
	})
}

// allowOrigin sets permissive CORS headers for the read-only API
func allowOrigin(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Accept, Content-Type")
			if origin != "*" {
				h.Add("Vary", "Origin")
			}
			next.ServeHTTP(w, r)
		})
	}
}
