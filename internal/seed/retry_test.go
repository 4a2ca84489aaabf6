package seed

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	err := withRetry("test", func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestWithRetryRecoversAfterTransientFailure(t *testing.T) {
	restore := sleep
	sleep = func(time.Duration) {}
	defer func() { sleep = restore }()

	calls := 0
	err := withRetry("test", func() error {
		calls++
		if calls < 3 {
			return errors.New("transitoire")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestWithRetryGivesUpAfterAttempts(t *testing.T) {
	restore := sleep
	var delays []time.Duration
	sleep = func(d time.Duration) { delays = append(delays, d) }
	defer func() { sleep = restore }()

	calls := 0
	permanent := errors.New("permanent")
	err := withRetry("test", func() error {
		calls++
		return permanent
	})

	require.ErrorIs(t, err, permanent)
	require.Equal(t, retryAttempts, calls)

	// backoff exponentiel : chaque délai double le précédent
	require.Len(t, delays, retryAttempts-1)
	require.Equal(t, retryBaseDelay, delays[0])
	for i := 1; i < len(delays); i++ {
		require.Equal(t, delays[i-1]*2, delays[i])
	}
}
