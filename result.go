package conform

// Result aggregates the errors of one Validate call. It is never mutated
// after construction.
type Result struct {
	errors Errors
}

func newResult(errs []ValidationError) Result {
	if len(errs) == 0 {
		return Result{}
	}
	return Result{errors: errs}
}

// Valid reports whether no errors were found.
func (r Result) Valid() bool { return len(r.errors) == 0 }

// FirstError returns the first error in encounter order, or nil.
func (r Result) FirstError() *ValidationError {
	if len(r.errors) == 0 {
		return nil
	}
	e := r.errors[0]
	return &e
}

// Errors returns a copy of the errors in encounter order.
func (r Result) Errors() Errors {
	if len(r.errors) == 0 {
		return nil
	}
	return append(Errors(nil), r.errors...)
}

// Len returns the number of errors.
func (r Result) Len() int { return len(r.errors) }

// Messages returns the error messages in encounter order.
func (r Result) Messages() []string {
	if len(r.errors) == 0 {
		return nil
	}
	out := make([]string, len(r.errors))
	for i, e := range r.errors {
		out[i] = e.Message
	}
	return out
}

// Err returns the errors as an error value (Errors), or nil when valid.
func (r Result) Err() error {
	if len(r.errors) == 0 {
		return nil
	}
	return r.Errors()
}
