package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Palmyraa/memfit/types"
)

// File implements a scenario source backed by a YAML file.
//
// The file is re-read on every fetch, so edits take effect on the next run
// without recreating the simulator.
//
// Expected document shape:
//
//	name: sample
//	blockSizes: [100, 500, 200, 300, 600]
//	processSizes: [212, 417, 112, 426]
type File struct {
	path string
}

var _ types.ScenarioSource = (*File)(nil)

// NewFile creates a scenario source reading from the given YAML file path.
//
// Parameters:
//   - path: Path to the scenario YAML file
//
// Returns:
//   - *File: Initialized file source
func NewFile(path string) *File {
	return &File{path: path}
}

// Scenario reads and decodes the scenario file.
//
// Returns:
//   - types.Scenario: Decoded scenario
//   - error: wraps types.ErrScenarioUnavailable when the file cannot be
//     read or decoded
func (f *File) Scenario(_ context.Context) (types.Scenario, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return types.Scenario{}, fmt.Errorf("%w: read %s: %v", types.ErrScenarioUnavailable, f.path, err)
	}

	var scenario types.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return types.Scenario{}, fmt.Errorf("%w: decode %s: %v", types.ErrScenarioUnavailable, f.path, err)
	}

	return scenario, nil
}
