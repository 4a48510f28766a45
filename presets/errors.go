package presets

import (
	"fmt"

	"github.com/automoto/scrollfx/motion"
)

func configErr(op, field, format string, args ...any) error {
	return &motion.ConfigError{Op: op, Field: field, Reason: fmt.Sprintf(format, args...)}
}
