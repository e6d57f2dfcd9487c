// Package envstore abstracts the environment variable table the validator
// reads from and the dotenv loader writes to.
//
// Process is backed by the real process environment and is what the service
// uses at startup. Memory is an isolated table for tests and for repeated
// validation runs (see the env watch command) where values loaded by an
// earlier run must not leak into the next.
//
// # Loading
//
// LoadFile parses a dotenv file with github.com/joho/godotenv and merges it
// into the store. Variables that already exist are not overridden, matching
// dotenv conventions, so an operator can always win over the file by
// exporting a value.
//
//	store := envstore.NewProcess()
//	if err := store.LoadFile(".env"); err != nil {
//	    var fileErr *envstore.FileError
//	    errors.As(err, &fileErr) // fileErr.Path == ".env"
//	}
package envstore
