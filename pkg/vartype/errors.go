package vartype

import (
	"fmt"
	"strings"
)

// Redacted replaces the value of sensitive variables in messages.
const Redacted = "[REDACTED]"

// InvalidValueError reports a value rejected by its variable type.
type InvalidValueError struct {
	// Name is the prefixed variable name, empty when the value was verified
	// without a variable attached.
	Name string
	Type Type
	// Value is the raw offending value. It is kept even for sensitive
	// variables; use DisplayValue when printing.
	Value     string
	Sensitive bool
	// Err is the underlying parse or OS error, if any.
	Err error
}

// DisplayValue returns the value safe for printing.
func (e *InvalidValueError) DisplayValue() string {
	if e.Sensitive {
		return Redacted
	}
	return e.Value
}

func (e *InvalidValueError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid value")
	if e.Name != "" {
		sb.WriteString(" for " + e.Name)
	}
	fmt.Fprintf(&sb, " of type %s: %q", e.Type, e.DisplayValue())
	// Parse errors quote the input, so they are dropped for secrets
	if e.Err != nil && !e.Sensitive {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
