package envstore

import (
	"maps"
	"strings"
	"sync"
)

// Memory is an in-memory Store.
type Memory struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMemory returns a Memory store holding a copy of vars.
func NewMemory(vars map[string]string) *Memory {
	m := &Memory{vars: make(map[string]string, len(vars))}
	maps.Copy(m.vars, vars)
	return m
}

// FromEnviron returns a Memory store seeded from "KEY=VALUE" entries, as
// returned by os.Environ.
func FromEnviron(environ []string) *Memory {
	return &Memory{vars: filterEnviron(environ, "")}
}

// Set sets name to value, overriding any previous value.
func (m *Memory) Set(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars[name] = value
}

// Unset removes name.
func (m *Memory) Unset(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, name)
}

func (m *Memory) Lookup(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[name]
	return v, ok
}

func (m *Memory) Snapshot(prefix string) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	vars := make(map[string]string)
	for name, value := range m.vars {
		if strings.HasPrefix(name, prefix) {
			vars[name] = value
		}
	}
	return vars
}

func (m *Memory) LoadFile(path string) error {
	loaded, err := readFile(path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for name, value := range loaded {
		if _, ok := m.vars[name]; !ok {
			m.vars[name] = value
		}
	}
	return nil
}
