package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmarsden/rowgrid/internal/grid"
)

// LoadSeed reads row payloads from a YAML file: a top-level list where
// each entry is a mapping. The payloads are opaque to the grid core;
// whatever keys the file carries are passed through untouched.
func LoadSeed(path string) ([]grid.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed %s: %w", path, err)
	}

	var payloads []grid.Fields
	if err := yaml.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parsing seed %s: %w", path, err)
	}
	return payloads, nil
}

// SyntheticRows generates n placeholder payloads for demos and tests.
func SyntheticRows(n int) []grid.Fields {
	payloads := make([]grid.Fields, n)
	for i := range payloads {
		payloads[i] = grid.Fields{
			"title": fmt.Sprintf("record %d", i+1),
		}
	}
	return payloads
}

// resolvePayloads picks the row source for a command: a seed file when
// given, otherwise n synthetic rows.
func resolvePayloads(seedPath string, n int) ([]grid.Fields, error) {
	if seedPath != "" {
		return LoadSeed(seedPath)
	}
	return SyntheticRows(n), nil
}
