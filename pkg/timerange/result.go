package timerange

// Result is the outcome of Validate. Valid is true exactly when Errors is empty.
type Result struct {
	Valid  bool              `json:"isValid" yaml:"isValid"`
	Errors []ValidationError `json:"errors" yaml:"errors"`
}

func newResult(errs []ValidationError) Result {
	if errs == nil {
		errs = []ValidationError{}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Codes returns the codes of all errors in order.
func (r Result) Codes() []Code {
	codes := make([]Code, 0, len(r.Errors))
	for _, e := range r.Errors {
		codes = append(codes, e.Code)
	}
	return codes
}

// Has reports whether the result contains the given code.
func (r Result) Has(code Code) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Messages returns the messages of all errors in order.
func (r Result) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}
