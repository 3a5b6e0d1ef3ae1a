package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/militarytime/internal/server"
	"github.com/dmitrymomot/militarytime/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates new request ID when not provided", func(t *testing.T) {
		t.Parallel()
		var seen string
		h := server.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = server.RequestIDFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(server.RequestIDHeader))
	})

	t.Run("reuses valid header", func(t *testing.T) {
		t.Parallel()
		var seen string
		h := server.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = server.RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(server.RequestIDHeader, "form-42_a")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "form-42_a", seen)
		assert.Equal(t, "form-42_a", rec.Header().Get(server.RequestIDHeader))
	})

	t.Run("replaces invalid header", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"has space", "semi;colon", "a/b", strings.Repeat("x", 129)} {
			h := server.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(server.RequestIDHeader, id)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(server.RequestIDHeader)
			assert.NotEqual(t, id, got)
			assert.Len(t, got, 36)
		}
	})

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, server.RequestIDFromContext(context.Background()))
	})
}

func TestAccessLog(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(server.RequestIDExtractor()),
	)
	h := server.NewRouter(log)

	req := httptest.NewRequest(http.MethodGet, "/v1/time-ranges/validate?value=-", nil)
	req.Header.Set(server.RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/v1/time-ranges/validate", entry["path"])
	assert.Equal(t, float64(http.StatusUnprocessableEntity), entry["status"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestRecover(t *testing.T) {
	t.Parallel()

	h := server.NewRouter(nil, server.WithMiddleware(func(http.Handler) http.Handler {
		return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal Server Error"}`, rec.Body.String())
}

func TestRecover_AfterHeadersWritten(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	h := server.NewRouter(log, server.WithMiddleware(func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("partial"))
			panic("late boom")
		})
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
	assert.Contains(t, buf.String(), `"headers_sent":true`)
	assert.Contains(t, buf.String(), `"status":202`)
}
