// Package app wires the configuration, the environment store and the
// reconciler into the startup gate run by the authgate binary.
//
// An App loads its configuration at most once and validates the environment
// before anything downstream starts. Callers that need a fresh view of the
// environment on every check, such as a file watcher, supply a store factory.
package app
