package reconcile

import (
	"fmt"
	"strings"
)

// MissingVariablesError lists every declared variable absent from the
// environment, in declaration order.
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return "missing environment variables: " + strings.Join(e.Names, ", ")
}

// UnknownVariablesError lists variables under the prefix that the schema
// does not declare, sorted by name.
type UnknownVariablesError struct {
	Prefix string
	Names  []string
}

func (e *UnknownVariablesError) Error() string {
	return fmt.Sprintf("unknown environment variables with prefix %q: %s", e.Prefix, strings.Join(e.Names, ", "))
}
