package server

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrInvalidBody is reported when a validate request body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
)
