package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

// RequestIDHeader carries the correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

type loggerKey struct{}

func loggerFrom(ctx context.Context, fallback *logger.Logger) *logger.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*logger.Logger); ok {
		return log
	}
	return fallback
}

// withRequestLogging assigns a correlation id, attaches a request-scoped
// logger to the context and logs one entry per request.
func withRequestLogging(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		reqLog := log.With("request_id", id)
		r = r.WithContext(context.WithValue(r.Context(), loggerKey{}, reqLog))

		observer := &statusObserver{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(observer, r)

		reqLog.WithFields(map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      observer.status,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

type statusObserver struct {
	http.ResponseWriter
	status int
}

func (o *statusObserver) WriteHeader(status int) {
	o.status = status
	o.ResponseWriter.WriteHeader(status)
}

func (o *statusObserver) Flush() {
	if flusher, ok := o.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
