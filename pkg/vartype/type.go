package vartype

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
)

var errNotRegularFile = errors.New("not a regular file")

// Type is the semantic type of an environment variable.
// Allowed is only consulted when Kind is KindEnumerated.
type Type struct {
	Kind    Kind
	Allowed []string
}

// Text accepts any non-empty string.
func Text() Type {
	return Type{Kind: KindText}
}

// UnsignedShort accepts base-10 integers in [0, 65535].
func UnsignedShort() Type {
	return Type{Kind: KindUnsignedShort}
}

// Enumerated accepts a value byte-for-byte equal to one of allowed.
func Enumerated(allowed ...string) Type {
	return Type{Kind: KindEnumerated, Allowed: slices.Clone(allowed)}
}

// FilePath accepts a path to an existing, regular, readable file.
func FilePath() Type {
	return Type{Kind: KindFilePath}
}

// String returns the type tag, with the allowed values for enumerated types.
func (t Type) String() string {
	if t.Kind == KindEnumerated {
		return fmt.Sprintf("%s%q", t.Kind, t.Allowed)
	}
	return t.Kind.String()
}

// Verify checks value against the rule of t. A rejected value is reported as
// an *InvalidValueError with an empty Name.
func (t Type) Verify(value string) error {
	switch t.Kind {
	case KindText:
		return t.verifyText(value)
	case KindUnsignedShort:
		return t.verifyUnsignedShort(value)
	case KindEnumerated:
		return t.verifyEnumerated(value)
	case KindFilePath:
		return t.verifyFilePath(value)
	default:
		return fmt.Errorf("unsupported variable type %s", t.Kind)
	}
}

func (t Type) verifyText(value string) error {
	if value == "" {
		return t.invalid(value, nil)
	}
	return nil
}

func (t Type) verifyUnsignedShort(value string) error {
	if _, err := strconv.ParseUint(value, 10, 16); err != nil {
		return t.invalid(value, err)
	}
	return nil
}

func (t Type) verifyEnumerated(value string) error {
	if slices.Contains(t.Allowed, value) {
		return nil
	}
	return t.invalid(value, nil)
}

func (t Type) verifyFilePath(value string) error {
	if value == "" {
		return t.invalid(value, nil)
	}

	info, err := os.Stat(value)
	if err != nil {
		return t.invalid(value, err)
	}
	if !info.Mode().IsRegular() {
		return t.invalid(value, errNotRegularFile)
	}

	// Existence is not enough, the file has to be openable for read
	f, err := os.Open(value)
	if err != nil {
		return t.invalid(value, err)
	}
	_ = f.Close()
	return nil
}

func (t Type) invalid(value string, cause error) *InvalidValueError {
	return &InvalidValueError{
		Type:  t,
		Value: value,
		Err:   cause,
	}
}
