package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/militarytime/pkg/logger"
	"github.com/dmitrymomot/militarytime/pkg/timerange"
	"github.com/dmitrymomot/militarytime/pkg/validator"
)

type handlers struct {
	log          *slog.Logger
	maxBodyBytes int64
}

// ValidateRequest is the POST /v1/time-ranges/validate body.
type ValidateRequest struct {
	TimeRange string `json:"time_range"`
}

// ValidateFormRequest is the POST /v1/time-ranges/validate-form body: form
// field names mapped to their raw time-range values.
type ValidateFormRequest struct {
	Fields map[string]string `json:"fields"`
}

// ValidateFormResponse lists field errors with their translation metadata.
type ValidateFormResponse struct {
	Valid  bool                       `json:"isValid"`
	Fields []string                   `json:"fields"`
	Errors validator.ValidationErrors `json:"errors"`
}

// CatalogEntry describes one error code in GET /v1/time-ranges/errors.
type CatalogEntry struct {
	Code           timerange.Code `json:"code"`
	Type           timerange.Kind `json:"type"`
	Message        string         `json:"message"`
	TranslationKey string         `json:"translation_key"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (h *handlers) validateBody(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := decodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		h.log.WarnContext(r.Context(), "rejected validate request", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	h.respond(w, r, req.TimeRange)
}

func (h *handlers) validateForm(w http.ResponseWriter, r *http.Request) {
	var req ValidateFormRequest
	err := decodeJSON(w, r, h.maxBodyBytes, &req)
	if err == nil && len(req.Fields) == 0 {
		err = fmt.Errorf("%w: fields must not be empty", ErrInvalidBody)
	}
	if err != nil {
		h.log.WarnContext(r.Context(), "rejected validate-form request", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	names := make([]string, 0, len(req.Fields))
	for name := range req.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	results := make([]error, 0, len(names))
	for _, name := range names {
		results = append(results, validator.TimeRange(name, req.Fields[name]))
	}

	resp := ValidateFormResponse{Valid: true, Fields: []string{}, Errors: validator.ValidationErrors{}}
	if verrs := validator.ExtractValidationErrors(validator.Merge(results...)); verrs != nil {
		resp = ValidateFormResponse{Fields: verrs.Fields(), Errors: verrs}
	}

	h.log.DebugContext(r.Context(), "time range form validated",
		logger.Valid(resp.Valid),
		slog.Int("fields", len(names)),
		slog.Int("errors", len(resp.Errors)),
	)

	status := http.StatusOK
	if !resp.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

func (h *handlers) validateQuery(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, r.URL.Query().Get("value"))
}

func (h *handlers) respond(w http.ResponseWriter, r *http.Request, input string) {
	res := timerange.Validate(input)

	h.log.DebugContext(r.Context(), "time range validated",
		logger.TimeRange(input),
		logger.Valid(res.Valid),
		logger.ErrorCodes(res.Codes()),
	)

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func (h *handlers) catalog(w http.ResponseWriter, _ *http.Request) {
	codes := timerange.Codes()
	entries := make([]CatalogEntry, 0, len(codes))
	for _, c := range codes {
		entries = append(entries, CatalogEntry{
			Code:           c,
			Type:           c.Kind(),
			Message:        c.Message(),
			TranslationKey: c.TranslationKey(),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

// decodeJSON reads a single JSON object from the body into dst, capped at limit bytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	body := http.MaxBytesReader(w, r.Body, limit)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidBody, tooLarge.Limit)
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: body is empty", ErrInvalidBody)
		default:
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	}
	if dec.More() {
		return fmt.Errorf("%w: body must contain a single JSON object", ErrInvalidBody)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
