package timerange

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	separator = "-"
	maxHour   = 23
	maxMinute = 59
)

var (
	// foreignSeparatorRegex matches separators users commonly type instead of '-'.
	foreignSeparatorRegex = regexp.MustCompile(`[/|~—_]|(?i:\bto\b)`)
	clockRegex            = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}$`)
)

// slot selects the start or end variant of each per-side diagnostic.
type slot struct {
	missing     Code
	format      Code
	hourRange   Code
	minuteRange Code
}

var (
	startSlot = slot{
		missing:     CodeMissingStartTime,
		format:      CodeInvalidStartTimeFormat,
		hourRange:   CodeInvalidStartHourRange,
		minuteRange: CodeInvalidStartMinuteRange,
	}
	endSlot = slot{
		missing:     CodeMissingEndTime,
		format:      CodeInvalidEndTimeFormat,
		hourRange:   CodeInvalidEndHourRange,
		minuteRange: CodeInvalidEndMinuteRange,
	}
)

// Validate checks a time range such as "09:00 - 17:30" and returns every
// problem found, in stage order. It never panics and has no side effects.
func Validate(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return newResult([]ValidationError{newError(CodeEmpty)})
	}

	switch dashes := strings.Count(trimmed, separator); {
	case dashes == 0:
		if foreignSeparatorRegex.MatchString(trimmed) {
			return newResult([]ValidationError{newError(CodeInvalidSeparator)})
		}
		return newResult([]ValidationError{newError(CodeMissingSeparator)})
	case dashes > 1:
		return newResult([]ValidationError{newError(CodeMultipleSeparator)})
	}

	before, after, _ := strings.Cut(trimmed, separator)
	start := strings.TrimSpace(before)
	end := strings.TrimSpace(after)

	switch {
	case start == "" && end == "":
		return newResult([]ValidationError{newError(CodeMissingTimes)})
	case start == "":
		return newResult([]ValidationError{newError(startSlot.missing)})
	case end == "":
		return newResult([]ValidationError{newError(endSlot.missing)})
	}

	var errs []ValidationError

	startOK := clockRegex.MatchString(start)
	if !startOK {
		errs = append(errs, newError(startSlot.format))
	}
	endOK := clockRegex.MatchString(end)
	if !endOK {
		errs = append(errs, newError(endSlot.format))
	}
	if !startOK && !endOK {
		return newResult(errs)
	}

	if startOK {
		errs = append(errs, checkRange(start, startSlot)...)
	}
	if endOK {
		errs = append(errs, checkRange(end, endSlot)...)
	}

	return newResult(errs)
}

// checkRange expects value to already match clockRegex.
func checkRange(value string, s slot) []ValidationError {
	hour, minute := splitClock(value)

	var errs []ValidationError
	if hour < 0 || hour > maxHour {
		errs = append(errs, newError(s.hourRange))
	}
	if minute < 0 || minute > maxMinute {
		errs = append(errs, newError(s.minuteRange))
	}
	return errs
}

func splitClock(value string) (hour, minute int) {
	h, m, _ := strings.Cut(value, ":")
	// Both halves are two ASCII digits here, so Atoi cannot fail.
	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	return hour, minute
}
