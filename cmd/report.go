package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	sim "github.com/inference-sim/botsim/sim"
	"github.com/inference-sim/botsim/sim/trace"
)

// Report is the outcome of one run, as printed by the run command.
// GoalBot and GoalProduct are nil when the run never produced them.
type Report struct {
	Input       string              `json:"input"`
	GoalValues  [2]int              `json:"goal_values"`
	GoalBot     *int                `json:"goal_bot"`
	GoalOutputs []int               `json:"goal_outputs"`
	GoalProduct *int                `json:"goal_product"`
	Outputs     map[int]int         `json:"outputs"`
	Metrics     *sim.Metrics        `json:"metrics"`
	Trace       *trace.TraceSummary `json:"trace,omitempty"`
}

func newReport(input string, s *sim.Simulator) *Report {
	r := &Report{
		Input:       input,
		GoalValues:  [2]int{s.Config.GoalPair.Low, s.Config.GoalPair.High},
		GoalOutputs: s.Config.GoalOutputs,
		Outputs:     s.Outputs(),
		Metrics:     s.Metrics,
	}
	if bot, ok := s.GoalBot(); ok {
		r.GoalBot = &bot
	} else {
		logrus.Warnf("No bot compared %s", s.Config.GoalPair)
	}
	if product, err := s.GoalProduct(); err == nil {
		r.GoalProduct = &product
	} else {
		logrus.Warnf("No goal product: %v", err)
	}
	if s.Trace != nil {
		r.Trace = trace.Summarize(s.Trace)
	}
	return r
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteText writes the answers and output bins in human-readable form.
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintf(w, "=== Results: %s ===\n", r.Input)
	if r.GoalBot != nil {
		fmt.Fprintf(w, "Goal Bot (%d,%d)     : %d\n", r.GoalValues[0], r.GoalValues[1], *r.GoalBot)
	} else {
		fmt.Fprintf(w, "Goal Bot (%d,%d)     : none\n", r.GoalValues[0], r.GoalValues[1])
	}
	if r.GoalProduct != nil {
		fmt.Fprintf(w, "Product of %v  : %d\n", r.GoalOutputs, *r.GoalProduct)
	} else {
		fmt.Fprintf(w, "Product of %v  : n/a\n", r.GoalOutputs)
	}

	ids := make([]int, 0, len(r.Outputs))
	for id := range r.Outputs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "  output %-4d : %d\n", id, r.Outputs[id])
	}
	if r.Trace != nil {
		fmt.Fprintf(w, "Trace: %d comparisons, %d deposits (%d replaced), max fires per bot %d\n",
			r.Trace.TotalComparisons, r.Trace.TotalDeposits, r.Trace.ReplacedDeposits, r.Trace.MaxFireCount())
	}
}
