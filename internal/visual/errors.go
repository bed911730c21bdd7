package visual

import (
	"errors"
	"fmt"
)

// Errors returned by transformers and offset checks.
var (
	// ErrInvalidOffset indicates an offset outside [0, length].
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrInvalidConfig indicates a transformer was constructed with
	// parameters it cannot honor.
	ErrInvalidConfig = errors.New("invalid config")
)

// ConfigError describes a rejected construction parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// NewConfigError creates a ConfigError for the named parameter.
func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}
