// Package logger builds *slog.Logger instances for the militarytime binaries.
//
// A single factory, New, is configured with Option functions that select the
// output format (json or text), the minimum level, static attributes and
// ContextExtractor callbacks. Extractors run on every record, so values stored
// in a request context (for example the request ID) show up in logs without
// being passed around explicitly.
//
// Attribute helpers in attr.go (Error, RequestID, TimeRange, ErrorCodes, ...)
// keep key names consistent between the HTTP server and the CLI.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "time range validated",
//	    logger.TimeRange(input),
//	    logger.Valid(res.Valid),
//	    logger.ErrorCodes(res.Codes()),
//	)
package logger
