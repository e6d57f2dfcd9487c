// Package audit writes RFC5424 syslog records for environment validation
// outcomes.
//
// Each reconciliation run produces one ValidationEvent. Records carry the
// prefix, the environment file and the names of offending variables, never
// their values.
//
// # Usage
//
//	logger := audit.NewLogger(os.Stderr)
//	logger.Log(audit.ValidationEvent{Prefix: "APP_", EnvFile: ".env", Success: true})
package audit
