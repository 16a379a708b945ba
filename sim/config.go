package sim

import (
	"fmt"

	"github.com/inference-sim/botsim/sim/trace"
)

// Default goal values and bins from the puzzle statement.
const (
	DefaultGoalLow  = 17
	DefaultGoalHigh = 61
)

// DefaultGoalOutputs are the bins multiplied by GoalProduct.
var DefaultGoalOutputs = []int{0, 1, 2}

// Pair is an unordered pair of chip values, stored normalized (Low <= High).
type Pair struct {
	Low  int
	High int
}

// NewPair builds a normalized Pair from two values given in any order.
func NewPair(a, b int) Pair {
	return Pair{Low: min(a, b), High: max(a, b)}
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.Low, p.High)
}

// Config groups the externally configured parameters of one simulation run.
type Config struct {
	GoalPair    Pair             // chip values whose comparison marks the goal bot
	GoalOutputs []int            // bins multiplied by GoalProduct
	Selector    string           // "lowest-id" (default), "fifo", "random"
	TraceLevel  trace.TraceLevel // "none" (default) or "decisions"
}

// DefaultConfig returns the factory puzzle settings: goal pair (17,61), bins 0, 1, 2.
func DefaultConfig() Config {
	return Config{
		GoalPair:    NewPair(DefaultGoalLow, DefaultGoalHigh),
		GoalOutputs: append([]int(nil), DefaultGoalOutputs...),
		Selector:    "lowest-id",
		TraceLevel:  trace.TraceLevelNone,
	}
}

// Validate checks selector and trace names and goal bin ids.
func (c Config) Validate() error {
	if !IsValidSelector(c.Selector) {
		return fmt.Errorf("unknown selector %q", c.Selector)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	if len(c.GoalOutputs) == 0 {
		return fmt.Errorf("goal outputs must not be empty")
	}
	for _, id := range c.GoalOutputs {
		if id < 0 {
			return fmt.Errorf("goal output ids must be non-negative, got %d", id)
		}
	}
	if c.GoalPair.Low < 0 {
		return fmt.Errorf("goal values must be non-negative, got %s", c.GoalPair)
	}
	return nil
}
