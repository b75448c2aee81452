package templates

import (
	"errors"
	"fmt"
)

var (
	ErrCategoryNotFound = errors.New("template category not found")
	ErrTemplateNotFound = errors.New("template not found")
)

// MissingVariableError reports a placeholder the caller did not supply
// a value for.
type MissingVariableError struct {
	Variable string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing variable: %q", e.Variable)
}
