package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalComparisons int
	TotalDeposits    int
	ReplacedDeposits int
	GoalComparisons  int
	UniqueBots       int
	FireCounts       map[int]int // bot ID → number of times it fired
	BinsFilled       map[int]int // output ID → number of deposits
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		FireCounts: make(map[int]int),
		BinsFilled: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalComparisons = len(st.Comparisons)
	for _, c := range st.Comparisons {
		summary.FireCounts[c.Bot]++
		if c.Goal {
			summary.GoalComparisons++
		}
	}

	summary.TotalDeposits = len(st.Deposits)
	for _, d := range st.Deposits {
		summary.BinsFilled[d.Output]++
		if d.Replaced {
			summary.ReplacedDeposits++
		}
	}

	summary.UniqueBots = len(summary.FireCounts)

	return summary
}

// MaxFireCount returns the largest per-bot fire count; 1 for any complete, valid run.
func (s *TraceSummary) MaxFireCount() int {
	best := 0
	for _, n := range s.FireCounts {
		best = max(best, n)
	}
	return best
}
