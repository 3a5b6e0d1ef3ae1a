package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/militarytime/pkg/logger"
)

const defaultMaxBodyBytes int64 = 4096

type routerOptions struct {
	maxBodyBytes int64
	middlewares  []func(http.Handler) http.Handler
}

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

// WithMaxBodyBytes caps the validate request body. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) RouterOption {
	return func(o *routerOptions) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

// WithMiddleware appends middleware after the built-in stack.
func WithMiddleware(mw ...func(http.Handler) http.Handler) RouterOption {
	return func(o *routerOptions) {
		o.middlewares = append(o.middlewares, mw...)
	}
}

// NewRouter builds the HTTP API. A nil log discards records.
func NewRouter(log *slog.Logger, opts ...RouterOption) chi.Router {
	if log == nil {
		log = logger.Discard()
	}
	o := &routerOptions{maxBodyBytes: defaultMaxBodyBytes}
	for _, opt := range opts {
		opt(o)
	}

	h := &handlers{log: log.With(logger.Component("http")), maxBodyBytes: o.maxBodyBytes}

	r := chi.NewRouter()
	r.Use(RequestID, AccessLog(log), Recover(log))
	r.Use(o.middlewares...)

	r.Get("/health", h.health)
	r.Route("/v1/time-ranges", func(r chi.Router) {
		r.Post("/validate", h.validateBody)
		r.Get("/validate", h.validateQuery)
		r.Post("/validate-form", h.validateForm)
		r.Get("/errors", h.catalog)
	})

	return r
}
