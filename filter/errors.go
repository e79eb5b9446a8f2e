package filter

import (
	"fmt"
)

// Error types for filter operations
type (
	// CompileError indicates a filter expression could not be compiled
	CompileError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter failed on a specific bot
	EvaluationError struct {
		Expression string
		BotID      string
		Err        error
	}
)

func (e *CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compile error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compile error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for '%s' on bot %s: %v", e.Expression, e.BotID, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
