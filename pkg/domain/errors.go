package domain

import (
	"errors"
	"fmt"
)

var (
	ErrToolNotFound = errors.New("tool not found")
)

type ToolErrorKind string

const (
	ToolErrorKind_Validation ToolErrorKind = "validation"
	ToolErrorKind_Domain     ToolErrorKind = "domain"
)

// ToolError is the failure value every tool operation reports instead of
// panicking. The kind separates malformed payloads from well-shaped payloads
// that violate a mathematical precondition; both end up in the same error
// envelope.
type ToolError struct {
	Kind    ToolErrorKind
	Message string
}

func (e *ToolError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ToolError {
	return &ToolError{
		Kind:    ToolErrorKind_Validation,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewDomainError(format string, args ...any) *ToolError {
	return &ToolError{
		Kind:    ToolErrorKind_Domain,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsValidationError(err error) bool {
	var toolErr *ToolError
	return errors.As(err, &toolErr) && toolErr.Kind == ToolErrorKind_Validation
}

func IsDomainError(err error) bool {
	var toolErr *ToolError
	return errors.As(err, &toolErr) && toolErr.Kind == ToolErrorKind_Domain
}
