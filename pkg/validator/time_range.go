package validator

import (
	"github.com/dmitrymomot/militarytime/pkg/timerange"
)

// TimeRange validates a "HH:MM - HH:MM" value and reports every diagnostic
// from timerange.Validate as a separate error for field, in the same order.
// Messages come from the timerange catalog and translation keys follow
// timerange.Code.TranslationKey.
func TimeRange(field, value string) error {
	res := timerange.Validate(value)
	if res.Valid {
		return nil
	}

	errs := make(ValidationErrors, 0, len(res.Errors))
	for _, e := range res.Errors {
		errs.Add(ValidationError{
			Field:          field,
			Message:        e.Message,
			TranslationKey: e.Code.TranslationKey(),
			TranslationValues: map[string]any{
				"field": field,
				"code":  string(e.Code),
				"type":  string(e.Kind),
			},
		})
	}
	return errs
}
