package schedule

import "errors"

// ErrInvalidInput indicates malformed planning arguments.
var ErrInvalidInput = errors.New("invalid planning input")
