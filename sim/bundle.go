package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/botsim/sim/trace"
)

// ConfigBundle holds simulation configuration, loadable from a YAML file.
// Nil pointer and empty fields mean "not set in YAML": they do not override
// the Config they are applied to.
type ConfigBundle struct {
	GoalValues  []int  `yaml:"goal_values"`
	GoalOutputs []int  `yaml:"goal_outputs"`
	Selector    string `yaml:"selector"`
	Seed        *int64 `yaml:"seed"`
	Trace       string `yaml:"trace"`
}

// LoadConfigBundle reads and parses a YAML configuration file.
// Unknown keys are rejected so that typos surface as errors.
func LoadConfigBundle(path string) (*ConfigBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var bundle ConfigBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &bundle, nil
}

// Validate checks the fields that are set.
func (b *ConfigBundle) Validate() error {
	if b.GoalValues != nil && len(b.GoalValues) != 2 {
		return fmt.Errorf("goal_values must hold exactly 2 values, got %d", len(b.GoalValues))
	}
	for _, v := range b.GoalValues {
		if v < 0 {
			return fmt.Errorf("goal_values must be non-negative, got %d", v)
		}
	}
	for _, id := range b.GoalOutputs {
		if id < 0 {
			return fmt.Errorf("goal_outputs must be non-negative, got %d", id)
		}
	}
	if !IsValidSelector(b.Selector) {
		return fmt.Errorf("unknown selector %q", b.Selector)
	}
	if !trace.IsValidTraceLevel(b.Trace) {
		return fmt.Errorf("unknown trace level %q", b.Trace)
	}
	return nil
}

// Apply overrides cfg with every field set in the bundle.
func (b *ConfigBundle) Apply(cfg *Config) {
	if len(b.GoalValues) == 2 {
		cfg.GoalPair = NewPair(b.GoalValues[0], b.GoalValues[1])
	}
	if len(b.GoalOutputs) > 0 {
		cfg.GoalOutputs = append([]int(nil), b.GoalOutputs...)
	}
	if b.Selector != "" {
		cfg.Selector = b.Selector
	}
	if b.Trace != "" {
		cfg.TraceLevel = trace.TraceLevel(b.Trace)
	}
}
