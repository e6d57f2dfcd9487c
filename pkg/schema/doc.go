// Package schema holds the closed set of environment variables the service
// requires before it starts.
//
// A Spec pairs a suffix name (e.g. DB_PORT) with a vartype.Type. The actual
// variable name is the namespace prefix followed by the suffix, with no
// separator added: prefix "APP_" and suffix "DB_PORT" read APP_DB_PORT.
//
// # Catalog
//
// Default is built from Catalog and is never mutated:
//
//	DB_NAME                   text
//	DB_HOST                   text
//	DB_PORT                   unsigned_short
//	DB_USER                   text
//	DB_PASS                   text (sensitive)
//	DB_SSL_MODE               enumerated: disable allow prefer require verify-ca verify-full
//	PATH_TO_DB_SSL_ROOT_CERT  file_path
//
// # Usage
//
//	if err := schema.Default.VerifyAll(store, "APP_"); err != nil {
//	    return err
//	}
//
// Lookups go through a Getter so callers can verify against an isolated
// environment instead of the process-wide one.
package schema
