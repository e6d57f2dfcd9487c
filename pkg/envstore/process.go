package envstore

import (
	"fmt"
	"os"
	"strings"
)

// Process is the process-wide environment.
//
// The process environment has no locking discipline of its own; LoadFile
// must not run concurrently with readers.
type Process struct{}

// NewProcess returns a Store backed by the process environment.
func NewProcess() *Process {
	return &Process{}
}

func (p *Process) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (p *Process) Snapshot(prefix string) map[string]string {
	return filterEnviron(os.Environ(), prefix)
}

func (p *Process) LoadFile(path string) error {
	vars, err := readFile(path)
	if err != nil {
		return err
	}
	for name, value := range vars {
		if _, ok := os.LookupEnv(name); ok {
			continue
		}
		if err := os.Setenv(name, value); err != nil {
			return &FileError{Path: path, Err: fmt.Errorf("setting %s: %w", name, err)}
		}
	}
	return nil
}

func filterEnviron(environ []string, prefix string) map[string]string {
	vars := make(map[string]string)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			vars[name] = value
		}
	}
	return vars
}
