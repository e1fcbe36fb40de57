package core

import "fmt"

// ConfigurationError reports a setup mistake: a frame provider used before its
// frames were set, an unknown archetype, a missing asset. It is fatal and is
// never recovered inside the loop.
type ConfigurationError struct {
	Op      string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Op, e.Message)
}

// InvariantViolation reports data that breaks a structural invariant, such as
// an explosion asset whose angle and frame-index tables disagree in length.
// Assets are validated at load time so this never surfaces per tick.
type InvariantViolation struct {
	Op      string
	Message string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s: %s", e.Op, e.Message)
}

// LogicGuard reports a contract breach in event ordering, for example a fire
// predicate evaluated while no player exists. It is raised with panic.
type LogicGuard struct {
	Op      string
	Message string
}

func (e *LogicGuard) Error() string {
	return fmt.Sprintf("logic guard: %s: %s", e.Op, e.Message)
}

// Configf builds a ConfigurationError.
func Configf(op, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// Invariantf builds an InvariantViolation.
func Invariantf(op, format string, args ...any) *InvariantViolation {
	return &InvariantViolation{Op: op, Message: fmt.Sprintf(format, args...)}
}
