package assignment

import (
	"fmt"

	"github.com/acortes/studytrack/internal/validate"
)

// ValidateCreateInput validates fields required to create an assignment.
func ValidateCreateInput(req CreateRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// ValidateUpdateInput validates an update request.
func ValidateUpdateInput(req UpdateRequest) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// ValidateTransition validates a requested status transition. Pending and
// in-progress move freely between each other; completed is reachable from any
// non-completed state and is terminal; overdue is derived and never settable.
func ValidateTransition(from, to Status) error {
	if to == StatusOverdue {
		return fmt.Errorf("%w: overdue is derived from the due date", ErrInvalidTransition)
	}
	if from == StatusCompleted {
		return fmt.Errorf("%w: completed is terminal", ErrInvalidTransition)
	}
	switch to {
	case StatusPending, StatusInProgress, StatusCompleted:
		return nil
	}
	return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
}
