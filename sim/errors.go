package sim

import "fmt"

// ConfigError reports malformed simulation input (§7): missing fields,
// non-positive capacities, an unknown cache policy, and the like. The
// engine is never invoked when one is returned — validation happens
// entirely before Simulator construction.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: field %q: %s", e.Field, e.Msg)
}

// NewConfigError constructs a ConfigError for the named field.
func NewConfigError(field, msg string) *ConfigError {
	return &ConfigError{Field: field, Msg: msg}
}
