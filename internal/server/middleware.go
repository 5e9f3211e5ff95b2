package server

import (
	"net/http"
	"time"
)

// statusRecorder wraps a ResponseWriter and captures the status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader records the status code before delegating.
func (w *statusRecorder) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// logRequests logs every request after it completes. Only the method, path,
// status, duration, and remote address are recorded; request bodies are
// never touched, so the submitted password cannot leak into logs.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		// Health probes fire frequently and carry no signal.
		if r.URL.Path == "/healthz" {
			return
		}

		s.logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.statusCode,
			"duration", time.Since(start).String(),
			"remote_addr", r.RemoteAddr,
		)
	})
}
