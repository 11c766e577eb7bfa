package memfit

import (
	"testing"

	"github.com/Palmyraa/memfit/types"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Empty(t, cfg.Strategies)
	require.False(t, cfg.Parallel)
	require.True(t, cfg.CacheResults)
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts known strategy names", func(t *testing.T) {
		cfg := Config{Strategies: []string{"First Fit", "best-fit", "worst_fit"}}
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects unknown strategy names", func(t *testing.T) {
		cfg := Config{Strategies: []string{"First Fit", "next fit"}}
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorIs(t, err, types.ErrUnknownStrategy)
	})
}

func TestConfigStrategyNames(t *testing.T) {
	t.Run("empty list selects full set in canonical order", func(t *testing.T) {
		cfg := DefaultConfig()
		names, err := cfg.strategyNames()
		require.NoError(t, err)
		require.Equal(t, []types.StrategyName{
			types.StrategyFirstFit,
			types.StrategyBestFit,
			types.StrategyWorstFit,
		}, names)
	})

	t.Run("explicit list preserves declared order", func(t *testing.T) {
		cfg := Config{Strategies: []string{"worst fit", "first fit"}}
		names, err := cfg.strategyNames()
		require.NoError(t, err)
		require.Equal(t, []types.StrategyName{
			types.StrategyWorstFit,
			types.StrategyFirstFit,
		}, names)
	})
}
