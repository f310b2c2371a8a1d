package sketch

import "fmt"

// ModeError reports a tool value outside the supported set.
type ModeError struct {
	Mode Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("unsupported mode %s", e.Mode)
}
