package repository_test

import (
	"errors"
	"testing"

	"github.com/acortes/studytrack/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestRetry_SecondAttemptSucceeds(t *testing.T) {
	calls := 0
	err := repository.Retry(func() error {
		calls++
		if calls == 1 {
			return errors.New("disk hiccup")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestRetry_SurfacesPersistentFailure(t *testing.T) {
	calls := 0
	ioErr := errors.New("disk gone")
	err := repository.Retry(func() error {
		calls++
		return ioErr
	})
	require.ErrorIs(t, err, ioErr)
	require.Equal(t, 2, calls)
}

func TestRetry_NotFoundIsNotRetried(t *testing.T) {
	calls := 0
	err := repository.Retry(func() error {
		calls++
		return repository.ErrNotFound
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.Equal(t, 1, calls)
}
