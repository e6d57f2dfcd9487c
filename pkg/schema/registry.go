package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/doodlesbykumbi/authgate/pkg/vartype"
)

// Getter reads a single variable from an environment.
type Getter interface {
	Lookup(name string) (string, bool)
}

// Registry is an immutable, ordered set of Specs keyed by suffix.
type Registry struct {
	specs    []Spec
	bySuffix map[string]int
}

// NewRegistry creates a registry from specs, kept in declaration order.
// Empty or duplicate suffixes are rejected.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{
		specs:    make([]Spec, 0, len(specs)),
		bySuffix: make(map[string]int, len(specs)),
	}
	for _, spec := range specs {
		if spec.Suffix == "" {
			return nil, errors.New("variable suffix must not be empty")
		}
		if _, ok := r.bySuffix[spec.Suffix]; ok {
			return nil, fmt.Errorf("duplicate variable suffix %q", spec.Suffix)
		}
		if !spec.Type.Kind.IsAKind() {
			return nil, fmt.Errorf("variable %s has unsupported type %s", spec.Suffix, spec.Type.Kind)
		}
		if spec.Type.Kind == vartype.KindEnumerated && len(spec.Type.Allowed) == 0 {
			return nil, fmt.Errorf("variable %s is enumerated without allowed values", spec.Suffix)
		}
		r.bySuffix[spec.Suffix] = len(r.specs)
		r.specs = append(r.specs, spec)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. It is meant for
// statically declared catalogs.
func MustRegistry(specs ...Spec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns every spec in declaration order.
func (r *Registry) All() []Spec {
	return slices.Clone(r.specs)
}

// Len returns the number of specs.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Lookup finds a spec by suffix.
func (r *Registry) Lookup(suffix string) (Spec, bool) {
	i, ok := r.bySuffix[suffix]
	if !ok {
		return Spec{}, false
	}
	return r.specs[i], true
}

// Names returns the prefixed names of every spec in declaration order.
func (r *Registry) Names(prefix string) []string {
	names := make([]string, len(r.specs))
	for i, spec := range r.specs {
		names[i] = spec.Name(prefix)
	}
	return names
}

// Value fetches the current value of spec from env.
func (r *Registry) Value(env Getter, spec Spec, prefix string) (string, error) {
	name := spec.Name(prefix)
	value, ok := env.Lookup(name)
	if !ok {
		return "", &UnsetError{Name: name}
	}
	return value, nil
}

// Verify fetches the value of spec and checks it against the spec type.
func (r *Registry) Verify(env Getter, spec Spec, prefix string) error {
	value, err := r.Value(env, spec, prefix)
	if err != nil {
		return err
	}

	if err := spec.Type.Verify(value); err != nil {
		var invalid *vartype.InvalidValueError
		if errors.As(err, &invalid) {
			invalid.Name = spec.Name(prefix)
			invalid.Sensitive = spec.Sensitive
		}
		return err
	}
	return nil
}

// VerifyAll verifies every spec in declaration order and returns the first
// failure.
func (r *Registry) VerifyAll(env Getter, prefix string) error {
	for _, spec := range r.specs {
		if err := r.Verify(env, spec, prefix); err != nil {
			return err
		}
	}
	return nil
}
