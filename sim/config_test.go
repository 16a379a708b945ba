package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPair_NormalizesOrder(t *testing.T) {
	assert.Equal(t, NewPair(61, 17), NewPair(17, 61))
	assert.Equal(t, Pair{Low: 17, High: 61}, NewPair(61, 17))
	assert.Equal(t, "(17,61)", NewPair(61, 17).String())
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, []int{0, 1, 2}, cfg.GoalOutputs)
}

func TestDefaultConfig_GoalOutputsNotShared(t *testing.T) {
	// Mutating one config's bins must not leak into the package default
	cfg := DefaultConfig()
	cfg.GoalOutputs[0] = 99
	assert.Equal(t, 0, DefaultConfig().GoalOutputs[0])
}

func TestConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown selector", func(c *Config) { c.Selector = "sjf" }},
		{"unknown trace level", func(c *Config) { c.TraceLevel = "all" }},
		{"no goal outputs", func(c *Config) { c.GoalOutputs = nil }},
		{"negative goal output", func(c *Config) { c.GoalOutputs = []int{-1} }},
		{"negative goal value", func(c *Config) { c.GoalPair = NewPair(-3, 4) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
