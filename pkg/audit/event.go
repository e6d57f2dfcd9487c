package audit

import (
	"fmt"
	"strings"
)

// ValidationEvent records the outcome of one environment validation
type ValidationEvent struct {
	Prefix  string
	EnvFile string
	Success bool

	// Offending variable names, set on failure
	Missing     []string
	Unknown     []string
	Invalid     string
	InvalidType string

	// Reason describes a failure that names no variable
	Reason string
}

func (e ValidationEvent) MessageID() string {
	return "env-check"
}

func (e ValidationEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("environment with prefix %s validated from %s", e.Prefix, e.EnvFile)
	}
	msg := fmt.Sprintf("environment with prefix %s rejected", e.Prefix)
	switch {
	case len(e.Missing) > 0:
		msg += ": missing " + strings.Join(e.Missing, ", ")
	case len(e.Unknown) > 0:
		msg += ": undeclared " + strings.Join(e.Unknown, ", ")
	case e.Invalid != "":
		msg += ": invalid value for " + e.Invalid
		if e.InvalidType != "" {
			msg += " of type " + e.InvalidType
		}
	case e.Reason != "":
		msg += ": " + e.Reason
	}
	return msg
}

func (e ValidationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ValidationEvent) Facility() int {
	return FacilityDaemon
}

func (e ValidationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}

	sd := map[string]map[string]string{
		SDIDSubject: {
			"prefix":   e.Prefix,
			"env_file": e.EnvFile,
		},
		SDIDAction: {
			"operation": "validate",
			"result":    result,
		},
	}

	detail := map[string]string{}
	if len(e.Missing) > 0 {
		detail["missing"] = strings.Join(e.Missing, ",")
	}
	if len(e.Unknown) > 0 {
		detail["unknown"] = strings.Join(e.Unknown, ",")
	}
	if e.Invalid != "" {
		detail["invalid"] = e.Invalid
	}
	if len(detail) > 0 {
		sd[SDIDDetail] = detail
	}
	return sd
}
