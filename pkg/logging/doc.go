// Package logging builds the logrus logger shared by the command line and
// the reconciler.
package logging
