package schema

import "github.com/doodlesbykumbi/authgate/pkg/vartype"

// Variable suffixes. Keep in sync with .env.example.
const (
	DBName              = "DB_NAME"
	DBHost              = "DB_HOST"
	DBPort              = "DB_PORT"
	DBUser              = "DB_USER"
	DBPass              = "DB_PASS"
	DBSSLMode           = "DB_SSL_MODE"
	PathToDBSSLRootCert = "PATH_TO_DB_SSL_ROOT_CERT"
)

// PostgreSQL sslmode values
const (
	SSLModeDisable    = "disable"
	SSLModeAllow      = "allow"
	SSLModePrefer     = "prefer"
	SSLModeRequire    = "require"
	SSLModeVerifyCA   = "verify-ca"
	SSLModeVerifyFull = "verify-full"
)

// SSLModes lists the accepted DB_SSL_MODE values in libpq order.
var SSLModes = []string{
	SSLModeDisable,
	SSLModeAllow,
	SSLModePrefer,
	SSLModeRequire,
	SSLModeVerifyCA,
	SSLModeVerifyFull,
}

// Catalog returns the required variables of the service.
func Catalog() []Spec {
	return []Spec{
		{Suffix: DBName, Type: vartype.Text()},
		{Suffix: DBHost, Type: vartype.Text()},
		{Suffix: DBPort, Type: vartype.UnsignedShort()},
		{Suffix: DBUser, Type: vartype.Text()},
		{Suffix: DBPass, Type: vartype.Text(), Sensitive: true},
		{Suffix: DBSSLMode, Type: vartype.Enumerated(SSLModes...)},
		{Suffix: PathToDBSSLRootCert, Type: vartype.FilePath()},
	}
}

// Default is the registry built from Catalog.
var Default = MustRegistry(Catalog()...)
