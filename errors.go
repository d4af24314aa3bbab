package fundsim

import "strings"

// ConfigurationError is fatal at the run level: it is surfaced before any
// trial executes and marks the run Failed.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return "invalid simulation setup: " + strings.Join(e.Problems, "; ")
}
