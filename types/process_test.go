package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessStateString(t *testing.T) {
	tests := []struct {
		state ProcessState
		want  string
	}{
		{ProcessPending, "Pending"},
		{ProcessAllocated, "Allocated"},
		{ProcessUnallocated, "Unallocated"},
		{ProcessState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("ProcessState.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewProcess(t *testing.T) {
	t.Run("labels are 1-based", func(t *testing.T) {
		proc := NewProcess(1, 212)
		require.Equal(t, "P1", proc.ID)
		require.Equal(t, 212, proc.Size)
	})

	t.Run("starts pending", func(t *testing.T) {
		proc := NewProcess(1, 212)
		require.Equal(t, ProcessPending, proc.State)
	})

	t.Run("label follows input position", func(t *testing.T) {
		proc := NewProcess(4, 426)
		require.Equal(t, "P4", proc.ID)
	})
}
