package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/militarytime/pkg/timerange"
)

// Errors groups non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// TimeRange records the raw input under the key "time_range".
func TimeRange(value string) slog.Attr {
	return slog.String("time_range", value)
}

func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// ErrorCodes records diagnostic codes as a list under the key "error_codes".
func ErrorCodes(codes []timerange.Code) slog.Attr {
	ss := make([]string, len(codes))
	for i, c := range codes {
		ss[i] = string(c)
	}
	return slog.Any("error_codes", ss)
}
