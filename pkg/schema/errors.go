package schema

import "fmt"

// UnsetError reports a required variable absent from the environment.
type UnsetError struct {
	Name string
}

func (e *UnsetError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Name)
}
