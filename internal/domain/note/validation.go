package note

import (
	"fmt"

	"github.com/acortes/studytrack/internal/validate"
)

// ValidateCreateInput validates fields required to create a note.
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
