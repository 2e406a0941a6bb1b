package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log line per request. Server errors are
// logged at error level, client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
