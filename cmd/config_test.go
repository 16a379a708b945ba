package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/inference-sim/botsim/sim"
	"github.com/inference-sim/botsim/sim/trace"
)

// parsedRunCmd returns the run subcommand of a fresh tree with args parsed,
// plus the options read back from its flags.
func parsedRunCmd(t *testing.T, args ...string) (*cobra.Command, *options) {
	t.Helper()
	root := newRootCmd()
	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, run.ParseFlags(args))
	return run, optionsFrom(t, run)
}

func optionsFrom(t *testing.T, cmd *cobra.Command) *options {
	t.Helper()
	f := cmd.Flags()
	opts := &options{}
	var err error
	opts.configPath, err = f.GetString("config")
	require.NoError(t, err)
	opts.goalValues, err = f.GetIntSlice("goal")
	require.NoError(t, err)
	opts.goalBins, err = f.GetIntSlice("outputs")
	require.NoError(t, err)
	opts.selector, err = f.GetString("selector")
	require.NoError(t, err)
	opts.seed, err = f.GetInt64("seed")
	require.NoError(t, err)
	opts.traceLevel, err = f.GetString("trace")
	require.NoError(t, err)
	return opts
}

func TestResolveConfig_NoFlags_Defaults(t *testing.T) {
	cmd, opts := parsedRunCmd(t)

	cfg, seed, err := resolveConfig(cmd, opts)

	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), cfg)
	assert.Equal(t, int64(42), seed)
}

func TestResolveConfig_FileOverridesDefaults(t *testing.T) {
	// GIVEN a config file setting selector, goal values and seed
	path := writeTemp(t, "botsim.yaml", "goal_values: [3, 5]\nselector: fifo\nseed: 9\ntrace: decisions\n")
	cmd, opts := parsedRunCmd(t, "--config", path)

	// WHEN resolved without overriding flags
	cfg, seed, err := resolveConfig(cmd, opts)

	// THEN file values win over flag defaults
	require.NoError(t, err)
	assert.Equal(t, sim.NewPair(3, 5), cfg.GoalPair)
	assert.Equal(t, "fifo", cfg.Selector)
	assert.Equal(t, trace.TraceLevelDecisions, cfg.TraceLevel)
	assert.Equal(t, int64(9), seed)
}

func TestResolveConfig_ChangedFlagsOverrideFile(t *testing.T) {
	// GIVEN a config file and explicit flags for the same settings
	path := writeTemp(t, "botsim.yaml", "selector: fifo\nseed: 9\n")
	cmd, opts := parsedRunCmd(t, "--config", path, "--selector", "random", "--seed", "5", "--outputs", "4")

	// WHEN resolved
	cfg, seed, err := resolveConfig(cmd, opts)

	// THEN the flags win
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Selector)
	assert.Equal(t, int64(5), seed)
	assert.Equal(t, []int{4}, cfg.GoalOutputs)
}

func TestResolveConfig_InvalidFile_Fails(t *testing.T) {
	path := writeTemp(t, "botsim.yaml", "selector: sideways\n")
	cmd, opts := parsedRunCmd(t, "--config", path)

	_, _, err := resolveConfig(cmd, opts)
	assert.Error(t, err)
}

func TestResolveConfig_WrongGoalArity_Fails(t *testing.T) {
	cmd, opts := parsedRunCmd(t, "--goal", "1,2,3")

	_, _, err := resolveConfig(cmd, opts)
	assert.Error(t, err)
}

func TestResolveConfig_UnknownSelectorFlag_Fails(t *testing.T) {
	cmd, opts := parsedRunCmd(t, "--selector", "sjf")

	_, _, err := resolveConfig(cmd, opts)
	assert.Error(t, err)
}
