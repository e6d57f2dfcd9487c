// Command authgate validates the environment a service needs before it
// starts.
//
// It loads a dotenv file, checks that every variable of the DB_* schema is
// present under the configured prefix and verifies each value against its
// type: text, unsigned 16 bit integer, enumerated value or readable file path.
//
// # Quick Start
//
//	# Describe the variables the service expects
//	authgate env schema --prefix APP_
//
//	# Validate ./.env against the schema
//	authgate env check --prefix APP_
//
//	# Validate using ./config.toml and report the resolved settings
//	authgate run
//
// # Environment Variables
//
//   - AUTHGATE_CONFIG_PATH: Configuration file path (default: ./config)
//   - AUTHGATE_VARIABLE_PREFIX: Prefix of the service variables
//   - AUTHGATE_ENV_FILE_PATH: Dotenv file to load (default: ./.env)
//   - AUTHGATE_UNKNOWN_VARIABLES: warn, strict or ignore
//   - AUTHGATE_LOG_LEVEL: Log level (debug, info, warn, error)
package main
