package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Palmyraa/memfit/types"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	ctx := context.Background()

	t.Run("reads a scenario from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		doc := "name: sample\nblockSizes: [100, 500, 200, 300, 600]\nprocessSizes: [212, 417, 112, 426]\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		got, err := NewFile(path).Scenario(ctx)
		require.NoError(t, err)
		require.Equal(t, "sample", got.Name)
		require.Equal(t, []int{100, 500, 200, 300, 600}, got.BlockSizes)
		require.Equal(t, []int{212, 417, 112, 426}, got.ProcessSizes)
	})

	t.Run("re-reads the file on each fetch", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		require.NoError(t, os.WriteFile(path, []byte("blockSizes: [100]\nprocessSizes: [50]\n"), 0o600))
		src := NewFile(path)

		first, err := src.Scenario(ctx)
		require.NoError(t, err)
		require.Equal(t, []int{100}, first.BlockSizes)

		require.NoError(t, os.WriteFile(path, []byte("blockSizes: [200]\nprocessSizes: [50]\n"), 0o600))
		second, err := src.Scenario(ctx)
		require.NoError(t, err)
		require.Equal(t, []int{200}, second.BlockSizes)
	})

	t.Run("wraps missing file errors", func(t *testing.T) {
		_, err := NewFile(filepath.Join(t.TempDir(), "absent.yaml")).Scenario(ctx)
		require.ErrorIs(t, err, types.ErrScenarioUnavailable)
	})

	t.Run("wraps malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("blockSizes: {nope"), 0o600))

		_, err := NewFile(path).Scenario(ctx)
		require.ErrorIs(t, err, types.ErrScenarioUnavailable)
	})
}
