package conform

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind classifies a validation failure. The string values double as
// the reserved keys of a Messages tree.
type FailureKind string

const (
	FailureInput     FailureKind = ":input"     // Container expected; value missing, null or wrong container.
	FailureStruct    FailureKind = ":struct"    // Object expected where a struct is declared.
	FailureType      FailureKind = ":type"      // Primitive or enum membership failed.
	FailurePredicate FailureKind = ":predicate" // Base type matched but the subtype predicate did not.
	FailureDispatch  FailureKind = ":dispatch"  // Union could not classify the value.
)

// ErrMalformedType marks descriptor misconfiguration. Such failures are
// programmer errors and are raised as panics, never returned as
// ValidationErrors.
var ErrMalformedType = errors.New("conform: malformed type descriptor")

// MalformedTypeError describes which descriptor was misconfigured and where it
// was reached.
type MalformedTypeError struct {
	Type   string
	Path   Path
	Reason string
}

func (e *MalformedTypeError) Error() string {
	at := e.Path.String()
	if at == "" {
		at = rootLabel
	}
	return fmt.Sprintf("%s: %s at %s: %s", ErrMalformedType, e.Type, at, e.Reason)
}

func (e *MalformedTypeError) Unwrap() error { return ErrMalformedType }

func malformed(t Type, path Path, reason string) {
	name := "<nil>"
	if t != nil {
		name = t.Name()
	}
	panic(&MalformedTypeError{Type: name, Path: path, Reason: reason})
}

// ValidationError is a single conformance failure. Value is the offending
// value as supplied; it is not copied.
type ValidationError struct {
	Path     Path
	Value    any
	Expected string // Name of the descriptor the value failed against.
	Kind     FailureKind
	Message  string
}

func (e ValidationError) Error() string { return e.Message }

// Errors is an ordered collection of ValidationError that implements error.
type Errors []ValidationError

// Error summarizes the first few errors.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(es)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(es[i].Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// At returns the errors whose path equals p.
func (es Errors) At(p Path) Errors {
	var out Errors
	for _, e := range es {
		if e.Path.Equal(p) {
			out = append(out, e)
		}
	}
	return out
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}
