package schema

import "github.com/doodlesbykumbi/authgate/pkg/vartype"

// Spec declares one required environment variable.
type Spec struct {
	// Suffix is the variable name without the namespace prefix.
	Suffix string
	Type   vartype.Type
	// Sensitive values are never echoed in errors or logs.
	Sensitive bool
}

// Name returns the prefixed variable name.
func (s Spec) Name(prefix string) string {
	return prefix + s.Suffix
}
