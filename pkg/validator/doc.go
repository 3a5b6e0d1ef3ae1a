// Package validator turns time-range diagnostics into field-level errors that
// web forms can render or translate.
//
// TimeRange runs the timerange pipeline for one form field and returns a
// ValidationErrors value holding one ValidationError per diagnostic, in the
// same order. Each entry carries the field name, the catalog message, a
// "validation.time_range.<code>" translation key and TranslationValues with
// the field, code and kind. Merge combines the results of several fields.
//
// # Usage
//
//	err := validator.Merge(
//	    validator.TimeRange("weekday_hours", form.WeekdayHours),
//	    validator.TimeRange("weekend_hours", form.WeekendHours),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Field, e.TranslationKey)
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements Error and Is, so errors.Is(err,
// ErrValidationFailed) detects validation problems through wrapping while
// ExtractValidationErrors recovers the details.
package validator
