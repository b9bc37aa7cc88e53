package validation

// Violations maps a JSON property name to a violation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// NotNull flags field when the value was not provided at all.
func NotNull(field string, present bool, v Violations) {
	if !present {
		v[field] = "required"
	}
}
