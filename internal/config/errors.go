package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownField indicates no preset with the requested name exists.
	ErrUnknownField = errors.New("unknown field preset")

	// ErrUnknownKind indicates a preset kind other than mask or numeric.
	ErrUnknownKind = errors.New("unknown field kind")

	// ErrUnknownAccept indicates an accept filter name that is not defined.
	ErrUnknownAccept = errors.New("unknown accept filter")

	// ErrTypeMismatch indicates a setting has the wrong value type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrFileNotFound indicates an explicitly named config file is missing.
	ErrFileNotFound = errors.New("config file not found")
)

// SettingError attaches the setting path to a decode or build failure.
type SettingError struct {
	// Path is the dotted setting path, e.g. "fields.date.maxLength".
	Path string
	Err  error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SettingError) Unwrap() error {
	return e.Err
}

// TypeError is returned when a setting cannot be converted to the
// expected type.
type TypeError struct {
	// Path is the setting path.
	Path string
	// Expected is the expected type name.
	Expected string
	// Actual is the actual type name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
