// Tracks run-wide counters: steps taken and where chips went.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation
// for final reporting.
type Metrics struct {
	Steps           int `json:"steps"`            // Number of bots fired
	ChipsSeeded     int `json:"chips_seeded"`     // Chips placed by seed instructions
	ChipsRouted     int `json:"chips_routed"`     // Chips handed from bot to bot
	ChipsDeposited  int `json:"chips_deposited"`  // Chips dropped into output bins
	BinsOverwritten int `json:"bins_overwritten"` // Deposits that replaced an earlier chip
	PeakReadyDepth  int `json:"peak_ready_depth"` // Max number of simultaneously ready bots
}

// NewMetrics returns zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Print writes aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Steps                : %d\n", m.Steps)
	fmt.Fprintf(w, "Chips Seeded         : %d\n", m.ChipsSeeded)
	fmt.Fprintf(w, "Chips Routed         : %d\n", m.ChipsRouted)
	fmt.Fprintf(w, "Chips Deposited      : %d\n", m.ChipsDeposited)
	if m.BinsOverwritten > 0 {
		fmt.Fprintf(w, "Bins Overwritten     : %d\n", m.BinsOverwritten)
	}
	fmt.Fprintf(w, "Peak Ready Bots      : %d\n", m.PeakReadyDepth)
}
