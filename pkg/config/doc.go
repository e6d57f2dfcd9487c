// Package config loads the application configuration file that tells the
// startup gate where the environment file lives and which prefix namespaces
// the service variables.
//
// # Configuration Sources
//
// Configuration is resolved in order, later sources winning:
//
//   - Defaults
//   - Configuration file (TOML, YAML or JSON, chosen by extension)
//   - Environment variables
//   - Command line flags (applied by the caller with Set)
//
// The file is looked up at ./config unless AUTHGATE_CONFIG_PATH or an
// explicit path is given. A path without an extension is tried with .toml,
// .yaml, .yml and .json in that order.
//
// # File Format
//
//	[app]
//	env = "development"
//	prefix = "APP_"
//	env_file_path = "./.env"
//	unknown_variables = "warn"   # warn, strict or ignore
//	log_level = "info"
//
// # Environment Variables
//
//   - AUTHGATE_CONFIG_PATH: Configuration file path
//   - AUTHGATE_ENV: Deployment environment name
//   - AUTHGATE_VARIABLE_PREFIX: Namespace prefix of service variables
//   - AUTHGATE_ENV_FILE_PATH: Path of the dotenv file to load
//   - AUTHGATE_UNKNOWN_VARIABLES: Policy for undeclared prefixed variables
//   - AUTHGATE_LOG_LEVEL: Logging verbosity
package config
