package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/botsim/sim"
	"github.com/inference-sim/botsim/sim/trace"
)

// resolveConfig layers the run configuration: package defaults, then the YAML
// config file, then flags the user actually set. Flag defaults never override
// values from the file.
func resolveConfig(cmd *cobra.Command, opts *options) (sim.Config, int64, error) {
	cfg := sim.DefaultConfig()
	seed := opts.seed

	if opts.configPath != "" {
		bundle, err := sim.LoadConfigBundle(opts.configPath)
		if err != nil {
			return cfg, 0, err
		}
		if err := bundle.Validate(); err != nil {
			return cfg, 0, fmt.Errorf("invalid config %s: %w", opts.configPath, err)
		}
		bundle.Apply(&cfg)
		if bundle.Seed != nil && !cmd.Flags().Changed("seed") {
			seed = *bundle.Seed
		}
		logrus.Debugf("Loaded config from %s", opts.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("goal") {
		if len(opts.goalValues) != 2 {
			return cfg, 0, fmt.Errorf("--goal takes exactly 2 values, got %d", len(opts.goalValues))
		}
		cfg.GoalPair = sim.NewPair(opts.goalValues[0], opts.goalValues[1])
	}
	if flags.Changed("outputs") {
		cfg.GoalOutputs = append([]int(nil), opts.goalBins...)
	}
	if flags.Changed("selector") {
		cfg.Selector = opts.selector
	}
	if flags.Changed("trace") {
		cfg.TraceLevel = trace.TraceLevel(opts.traceLevel)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, 0, err
	}
	return cfg, seed, nil
}
