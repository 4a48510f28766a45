package motion

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every construction-time error the engine returns.
var ErrInvalidConfig = errors.New("motion: invalid configuration")

// ConfigError describes a caller bug detected while building a tween, timeline or link.
type ConfigError struct {
	Op     string
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("motion: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("motion: %s: %s: %s", e.Op, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

func configErr(op, field, format string, args ...any) error {
	return &ConfigError{Op: op, Field: field, Reason: fmt.Sprintf(format, args...)}
}
