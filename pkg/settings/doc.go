// Package settings turns a validated environment into typed settings.
//
// Decode should only be called after reconciliation succeeded; it relies on
// github.com/caarlos0/env to map prefixed variables onto struct fields and
// does not repeat the schema checks beyond what type conversion implies.
package settings
