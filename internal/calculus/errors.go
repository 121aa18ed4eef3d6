package calculus

import (
	"errors"
	"fmt"
)

// ConfigError reports a parameter that makes an approximation meaningless.
//
// It is returned synchronously, before the function is evaluated:
//   - epsilon <= 0 (or not finite) when building a FunctionContext
//   - step <= 0 (or not finite) for Points
//   - samples < 1 or an unknown rule for Integral
type ConfigError struct {
	// Code identifies the error category.
	Code ConfigErrorCode

	// Field names the offending parameter ("epsilon", "step", "samples", ...).
	Field string

	// Value is the rejected value, formatted for display.
	Value string

	// Message is a human-readable description.
	Message string
}

// ConfigErrorCode categorizes configuration errors.
type ConfigErrorCode string

const (
	// ErrCodeInvalidConfiguration indicates a parameter outside its valid range.
	ErrCodeInvalidConfiguration ConfigErrorCode = "INVALID_CONFIGURATION"
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s=%s)", e.Code, e.Message, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidConfiguration returns true if err is, or wraps, an
// invalid-configuration ConfigError.
func IsInvalidConfiguration(err error) bool {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidConfiguration
	}
	return false
}

// newConfigError creates an invalid-configuration error for a single field.
func newConfigError(field string, value any, message string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidConfiguration,
		Field:   field,
		Value:   fmt.Sprintf("%v", value),
		Message: message,
	}
}
