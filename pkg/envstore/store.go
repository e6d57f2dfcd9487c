package envstore

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
)

var errEmptyPath = errors.New("path is empty")

// Store is an environment variable table.
type Store interface {
	// Lookup returns the value of name and whether it is set.
	Lookup(name string) (string, bool)

	// Snapshot returns a fresh copy of every variable whose name starts
	// with prefix.
	Snapshot(prefix string) map[string]string

	// LoadFile merges the KEY=VALUE pairs of a dotenv file into the store
	// without overriding variables that are already set.
	LoadFile(path string) error
}

// FileError reports a dotenv file that is missing, unreadable or malformed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to load environment file at %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// readFile parses the dotenv file at path. godotenv reports a trailing line
// without "=" under an empty name instead of failing, so that is rejected here.
func readFile(path string) (map[string]string, error) {
	// godotenv falls back to ./.env for an empty list of names
	if path == "" {
		return nil, &FileError{Path: path, Err: errEmptyPath}
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	if name, ok := vars[""]; ok {
		return nil, &FileError{Path: path, Err: fmt.Errorf("line %q has no value assignment", name)}
	}
	return vars, nil
}
