package cnbapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := RetryPolicy{MaxAttempts: 5}.Do(func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_Exhaustion(t *testing.T) {
	transient := errors.New("transient")
	calls := 0
	err := RetryPolicy{MaxAttempts: 10}.Do(func() error {
		calls++
		return transient
	})

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 10, calls)
}

func TestRetryPolicy_ZeroAttemptsStillRunsOnce(t *testing.T) {
	calls := 0
	err := RetryPolicy{}.Do(func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}
