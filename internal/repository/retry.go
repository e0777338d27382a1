package repository

import "errors"

// Retry runs op, retrying once when it fails with a storage I/O error.
// Sentinel errors pass through untouched: a second attempt cannot change a
// not-found result.
func Retry(op func() error) error {
	err := op()
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		return err
	}
	return op()
}
