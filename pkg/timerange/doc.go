// Package timerange validates free-text 24-hour ("military") time ranges such
// as "09:00 - 17:30" and reports every problem it can find in a single pass.
//
// Unlike a boolean matcher, Validate returns a Result holding an ordered list
// of ValidationError values. Form handlers can render the whole list at once
// so the user sees a missing separator, a bad digit pattern and an out-of-range
// hour together instead of one at a time.
//
// # Pipeline
//
// Input is checked in stages. A stage that leaves nothing meaningful to check
// stops the pipeline; checks inside a stage accumulate:
//
//  1. Emptiness: a blank input yields only CodeEmpty.
//  2. Separator: exactly one '-' is required. Zero dashes yield
//     CodeMissingSeparator, or CodeInvalidSeparator when one of / | ~ — _ or
//     the word "to" was used instead. More than one dash yields
//     CodeMultipleSeparator.
//  3. Presence: both sides must be non-blank (CodeMissingTimes,
//     CodeMissingStartTime, CodeMissingEndTime).
//  4. Format: each side must be exactly HH:MM. Start and end are checked
//     independently.
//  5. Range: hours 00-23 and minutes 00-59, checked for every side that
//     passed the format stage.
//
// Errors appear in stage order, start before end, hour before minute.
//
// # Error catalog
//
// Every diagnostic is identified by a Code. The Code carries its Kind
// (KindInvalidFormat or KindInvalidTime), a canonical English message and a
// translation key, so callers can switch on codes or localize without parsing
// message strings.
//
// # Usage
//
//	res := timerange.Validate(" 09:00 - 25:61 ")
//	if !res.Valid {
//	    for _, e := range res.Errors {
//	        fmt.Println(e.Code, e.Message)
//	    }
//	}
//	// INVALID_END_HOUR_RANGE End time hour must be between 00 and 23
//	// INVALID_END_MINUTE_RANGE End time minutes must be between 00 and 59
//
// The package holds no mutable state; Validate is safe for concurrent use.
package timerange
