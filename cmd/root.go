package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/botsim/sim"
)

// options holds the CLI flags shared by every subcommand.
type options struct {
	inputPath  string // Instruction file
	configPath string // Optional YAML config; flags override it
	goalValues []int  // The two chip values whose comparison is reported
	goalBins   []int  // Output bins multiplied by the product command
	selector   string // Ready-bot selection policy
	seed       int64  // Seed for the random selector
	traceLevel string // Decision trace verbosity
	logLevel   string // Log verbosity level
	jsonOutput bool   // run: print a JSON report instead of text
}

// rootCmd is the base command for the CLI
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "botsim",
		Short:         "Simulator for balance-bot chip routing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.inputPath, "input", "i", "input.txt", "Instruction file")
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (goal_values, goal_outputs, selector, seed, trace)")
	flags.IntSliceVar(&opts.goalValues, "goal", []int{sim.DefaultGoalHigh, sim.DefaultGoalLow}, "The two chip values whose comparator is reported")
	flags.IntSliceVar(&opts.goalBins, "outputs", append([]int(nil), sim.DefaultGoalOutputs...), "Output bins multiplied by the product command")
	flags.StringVar(&opts.selector, "selector", "lowest-id", "Ready-bot selection (lowest-id, fifo, random)")
	flags.Int64Var(&opts.seed, "seed", 42, "Seed for the random selector")
	flags.StringVar(&opts.traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	flags.StringVar(&opts.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	root.AddCommand(newRunCmd(opts), newGoalCmd(opts), newProductCmd(opts))
	return root
}

// newGoalCmd reports the bot that compared the goal values.
func newGoalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "goal",
		Short: "Print the bot that compares the goal chip values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := simulate(cmd, opts)
			if err != nil {
				return err
			}
			bot, ok := s.GoalBot()
			if !ok {
				return fmt.Errorf("no bot compared %s", s.Config.GoalPair)
			}
			fmt.Fprintln(cmd.OutOrStdout(), bot)
			return nil
		},
	}
}

// newProductCmd reports the product of the goal output bins.
func newProductCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "product",
		Short: "Print the product of the chips in the goal output bins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := simulate(cmd, opts)
			if err != nil {
				return err
			}
			product, err := s.GoalProduct()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), product)
			return nil
		},
	}
}

// newRunCmd reports both answers plus run metrics.
func newRunCmd(opts *options) *cobra.Command {
	run := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation and report the goal bot, product and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := simulate(cmd, opts)
			if err != nil {
				return err
			}
			report := newReport(opts.inputPath, s)
			if opts.jsonOutput {
				return report.WriteJSON(cmd.OutOrStdout())
			}
			report.WriteText(cmd.OutOrStdout())
			s.Metrics.Print(cmd.OutOrStdout())
			return nil
		},
	}
	run.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print a JSON report")
	return run
}

// simulate resolves configuration, loads the instruction file and runs it to completion.
func simulate(cmd *cobra.Command, opts *options) (*sim.Simulator, error) {
	cfg, seed, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	set, err := sim.LoadInstructions(opts.inputPath)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Starting simulation: goal=%s outputs=%v selector=%s seed=%d", cfg.GoalPair, cfg.GoalOutputs, cfg.Selector, seed)

	s, err := sim.NewSimulator(set, cfg, sim.NewPartitionedRNG(sim.NewSimulationKey(seed)))
	if err != nil {
		return nil, err
	}
	if err := s.Run(); err != nil {
		return nil, fmt.Errorf("simulation failed after %d steps: %w", s.StepCount(), err)
	}
	logrus.Info("Simulation complete.")
	return s, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
