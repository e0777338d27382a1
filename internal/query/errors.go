package query

import "errors"

// ErrInvalidFilter indicates an unrecognized filter key, field, or value in a
// predicate spec.
var ErrInvalidFilter = errors.New("invalid search filter")
