package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/militarytime/pkg/logger"
)

// statusRecorder remembers the response status and whether headers went out.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// AccessLog logs one line per request after the handler returns.
func AccessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// Recover turns handler panics into 500 responses. When the handler already
// started the response, the panic is logged and the response is left as is.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				log.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", v),
					slog.String("path", r.URL.Path),
					slog.Bool("headers_sent", rec.wroteHeader),
				)
				if !rec.wroteHeader {
					writeJSON(rec, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
