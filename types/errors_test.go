package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrInvalidInput, ErrInvalidInput))
		require.False(t, errors.Is(ErrInvalidInput, ErrInvalidState))

		wrapped := fmt.Errorf("block size at index 2 must be positive: %w", ErrInvalidInput)
		require.True(t, errors.Is(wrapped, ErrInvalidInput))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidInput,
			ErrInvalidState,
			ErrBlockNotFound,
			ErrUnknownStrategy,
			ErrScenarioUnavailable,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}
