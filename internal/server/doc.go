// Package server exposes time-range validation over HTTP.
//
// NewRouter returns a chi router with the validation endpoints:
//
//	POST /v1/time-ranges/validate   {"time_range": "09:00 - 17:30"}
//	GET  /v1/time-ranges/validate?value=09:00-17:30
//	POST /v1/time-ranges/validate-form {"fields": {"weekday": "09:00 - 17:30"}}
//	GET  /v1/time-ranges/errors     error catalog
//	GET  /health                    liveness probe
//
// Validation responses carry the timerange.Result JSON document
// ({"isValid": ..., "errors": [...]}) with status 200 for a valid range and
// 422 for an invalid one. The form endpoint answers with field-scoped errors
// carrying translation keys, using the same status codes. Malformed request bodies get 400 with an
// {"error": "..."} document.
//
// Every request passes through request-ID, access-log and panic-recovery
// middleware. Server wraps http.Server with context-driven graceful shutdown.
package server
