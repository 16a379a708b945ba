package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// ReadySelector reorders the ready queue before each step.
// The engine fires the bot at the front after OrderQueue returns.
// For well-formed instruction sets the final outputs do not depend on the selector;
// the non-default selectors exist to check exactly that.
type ReadySelector interface {
	OrderQueue(bots []int)
}

// LowestIDSelector fires the ready bot with the smallest id first.
// This is the default selector.
type LowestIDSelector struct{}

func (l *LowestIDSelector) OrderQueue(bots []int) {
	sort.Ints(bots)
}

// FIFOSelector fires bots in the order they became ready (no-op).
type FIFOSelector struct{}

func (f *FIFOSelector) OrderQueue(_ []int) {
	// No-op: enqueue order preserved
}

// RandomSelector shuffles the ready queue using a seeded RNG.
type RandomSelector struct {
	rng *rand.Rand
}

func (r *RandomSelector) OrderQueue(bots []int) {
	r.rng.Shuffle(len(bots), func(i, j int) {
		bots[i], bots[j] = bots[j], bots[i]
	})
}

// ValidSelectors is the set of recognized selector names.
// Shared by Config.Validate() and NewSelector() to avoid duplication.
var ValidSelectors = map[string]bool{"": true, "lowest-id": true, "fifo": true, "random": true}

// IsValidSelector returns true if name is a recognized selector.
func IsValidSelector(name string) bool {
	return ValidSelectors[name]
}

// NewSelector creates a ReadySelector by name.
// Valid names: "lowest-id" (default), "fifo", "random".
// Empty string defaults to LowestIDSelector (for CLI flag default compatibility).
// "random" draws from the selector subsystem of rng; rng may be nil for the other names.
// Panics on unrecognized names.
func NewSelector(name string, rng *PartitionedRNG) ReadySelector {
	if !IsValidSelector(name) {
		panic(fmt.Sprintf("unknown selector %q", name))
	}
	switch name {
	case "", "lowest-id":
		return &LowestIDSelector{}
	case "fifo":
		return &FIFOSelector{}
	case "random":
		if rng == nil {
			rng = NewPartitionedRNG(NewSimulationKey(0))
		}
		return &RandomSelector{rng: rng.ForSubsystem(SubsystemSelector)}
	default:
		panic(fmt.Sprintf("unhandled selector %q", name))
	}
}
