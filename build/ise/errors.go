package ise

import (
	"fmt"
	"strings"
)

// ConfigurationError is returned when required tool options are missing.
// It lists every missing option, in the order they are required.
type ConfigurationError struct {
	Tool    string
	Missing []string
}

func (e *ConfigurationError) Error() string {
	quoted := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		quoted[i] = fmt.Sprintf("'%v'", m)
	}
	if len(quoted) == 1 {
		return fmt.Sprintf("%v: missing required option %v", e.Tool, quoted[0])
	}
	return fmt.Sprintf("%v: missing required options %v", e.Tool, strings.Join(quoted, ", "))
}
