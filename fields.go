package conform

// FieldChecker validates one field of a struct descriptor in isolation, with
// errors reported at the field's path. Form-binding layers build one checker
// per input from a struct descriptor.
type FieldChecker struct {
	Name  string
	Path  Path
	Type  Type
	check func(v any) Result
}

// Check validates the field value v.
func (c FieldChecker) Check(v any) Result { return c.check(v) }

// FieldCheckers returns a checker per field of t in declaration order. The
// options are applied to every check; a WithPath option is used as the
// prefix of the field paths.
func FieldCheckers(t StructType, opts ...Option) []FieldChecker {
	var base options
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	fields := t.Fields()
	out := make([]FieldChecker, 0, len(fields))
	for _, f := range fields {
		p := base.path.Field(f.Name)
		fieldOpts := append(append([]Option(nil), opts...), WithPath(p))
		ft := f.Type
		out = append(out, FieldChecker{
			Name: f.Name,
			Path: p,
			Type: ft,
			check: func(v any) Result {
				return Validate(v, ft, fieldOpts...)
			},
		})
	}
	return out
}
