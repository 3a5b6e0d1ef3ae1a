package timerange

import "strings"

// Kind groups diagnostics into structural and numeric problems.
type Kind string

const (
	// KindInvalidFormat means the input does not have the shape HH:MM - HH:MM.
	KindInvalidFormat Kind = "invalid_format"
	// KindInvalidTime means the shape is right but an hour or minute is out of range.
	KindInvalidTime Kind = "invalid_time"
)

// Code identifies a single diagnostic in the error catalog.
type Code string

const (
	CodeEmpty                   Code = "EMPTY"
	CodeMissingSeparator        Code = "MISSING_SEPARATOR"
	CodeInvalidSeparator        Code = "INVALID_SEPARATOR"
	CodeMultipleSeparator       Code = "MULTIPLE_SEPARATOR"
	CodeMissingTimes            Code = "MISSING_TIMES"
	CodeMissingStartTime        Code = "MISSING_START_TIME"
	CodeMissingEndTime          Code = "MISSING_END_TIME"
	CodeInvalidStartTimeFormat  Code = "INVALID_START_TIME_FORMAT"
	CodeInvalidEndTimeFormat    Code = "INVALID_END_TIME_FORMAT"
	CodeInvalidStartHourRange   Code = "INVALID_START_HOUR_RANGE"
	CodeInvalidEndHourRange     Code = "INVALID_END_HOUR_RANGE"
	CodeInvalidStartMinuteRange Code = "INVALID_START_MINUTE_RANGE"
	CodeInvalidEndMinuteRange   Code = "INVALID_END_MINUTE_RANGE"
)

type catalogEntry struct {
	kind    Kind
	message string
}

var catalog = map[Code]catalogEntry{
	CodeEmpty:                   {KindInvalidFormat, "Time range cannot be empty"},
	CodeMissingSeparator:        {KindInvalidFormat, "Time range must contain a '-' separator"},
	CodeInvalidSeparator:        {KindInvalidFormat, "Only '-' separator is allowed in time range"},
	CodeMultipleSeparator:       {KindInvalidFormat, "Multiple '-' separator is not allowed"},
	CodeMissingTimes:            {KindInvalidFormat, "Time range must contain start and end times"},
	CodeMissingStartTime:        {KindInvalidFormat, "Start time is missing"},
	CodeMissingEndTime:          {KindInvalidFormat, "End time is missing"},
	CodeInvalidStartTimeFormat:  {KindInvalidFormat, "Start time must be in HH:MM format"},
	CodeInvalidEndTimeFormat:    {KindInvalidFormat, "End time must be in HH:MM format"},
	CodeInvalidStartHourRange:   {KindInvalidTime, "Start time hour must be between 00 and 23"},
	CodeInvalidEndHourRange:     {KindInvalidTime, "End time hour must be between 00 and 23"},
	CodeInvalidStartMinuteRange: {KindInvalidTime, "Start time minutes must be between 00 and 59"},
	CodeInvalidEndMinuteRange:   {KindInvalidTime, "End time minutes must be between 00 and 59"},
}

// catalogOrder is the declaration order used by Codes.
var catalogOrder = []Code{
	CodeEmpty,
	CodeMissingSeparator,
	CodeInvalidSeparator,
	CodeMultipleSeparator,
	CodeMissingTimes,
	CodeMissingStartTime,
	CodeMissingEndTime,
	CodeInvalidStartTimeFormat,
	CodeInvalidEndTimeFormat,
	CodeInvalidStartHourRange,
	CodeInvalidEndHourRange,
	CodeInvalidStartMinuteRange,
	CodeInvalidEndMinuteRange,
}

// Codes returns every known code in catalog order.
func Codes() []Code {
	out := make([]Code, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// Kind returns the category of the code. Unknown codes report KindInvalidFormat.
func (c Code) Kind() Kind {
	if e, ok := catalog[c]; ok {
		return e.kind
	}
	return KindInvalidFormat
}

// Message returns the canonical English message, or the code itself if unknown.
func (c Code) Message() string {
	if e, ok := catalog[c]; ok {
		return e.message
	}
	return string(c)
}

// TranslationKey returns the i18n key for the code, e.g.
// "validation.time_range.missing_start_time".
func (c Code) TranslationKey() string {
	return "validation.time_range." + strings.ToLower(string(c))
}

func (c Code) String() string { return string(c) }

// ValidationError is a single diagnostic produced by Validate.
type ValidationError struct {
	Code    Code   `json:"code" yaml:"code"`
	Kind    Kind   `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
}

func newError(c Code) ValidationError {
	return ValidationError{Code: c, Kind: c.Kind(), Message: c.Message()}
}

func (e ValidationError) Error() string {
	return e.Message
}
