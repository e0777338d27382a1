package note

import "errors"

var (
	// ErrNoteNotFound indicates the note doesn't exist.
	ErrNoteNotFound = errors.New("note not found")
	// ErrValidation indicates a malformed note on construction or update.
	ErrValidation = errors.New("invalid note")
)
