package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario holds simulation parameters loadable from a YAML file.
// Zero values mean "not set in YAML"; command-line flags fill or override them.
type Scenario struct {
	Pages     string `yaml:"pages"`      // comma-separated reference string
	Frames    int    `yaml:"frames"`     // frame capacity
	Policy    string `yaml:"policy"`     // fifo, lru or clock
	MaxFrames int    `yaml:"max_frames"` // upper capacity for sweeps
}

// LoadScenario reads and parses a YAML scenario file.
// Unknown fields are rejected so typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks the policy name and parameter ranges.
// Pages and frames are checked later by Validate, once flags are merged.
func (s *Scenario) Validate() error {
	if _, err := ParsePolicyKind(s.Policy); err != nil {
		return err
	}
	if s.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", s.Frames)
	}
	if s.MaxFrames < 0 {
		return fmt.Errorf("max_frames must be non-negative, got %d", s.MaxFrames)
	}
	return nil
}
