// Package vartype defines the semantic types an environment variable can
// declare and the rule each type uses to accept or reject a raw value.
//
// # Types
//
//   - Text: any non-empty string
//   - UnsignedShort: a base-10 integer in [0, 65535], no sign
//   - Enumerated: exactly one of an ordered list of allowed values
//   - FilePath: an existing, regular, readable file
//
// # Usage
//
//	t := vartype.Enumerated("disable", "require")
//	if err := t.Verify(os.Getenv("APP_DB_SSL_MODE")); err != nil {
//	    var invalid *vartype.InvalidValueError
//	    errors.As(err, &invalid)
//	}
//
// Verification has no side effects other than the stat/open probe made for
// FilePath values. Relative paths resolve against the working directory.
package vartype
