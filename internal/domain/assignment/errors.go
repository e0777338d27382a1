package assignment

import "errors"

var (
	// ErrAssignmentNotFound indicates the assignment doesn't exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrValidation indicates a malformed assignment on construction or update.
	ErrValidation = errors.New("invalid assignment")
	// ErrInvalidTransition indicates an invalid status transition.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrCompleted indicates an edit attempt on a completed assignment.
	ErrCompleted = errors.New("assignment already completed")
)
