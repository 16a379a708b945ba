package sim

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleInstructions is the worked example from the puzzle statement.
const sampleInstructions = `value 5 goes to bot 2
bot 2 gives low to bot 1 and high to bot 0
value 3 goes to bot 1
bot 1 gives low to output 1 and high to bot 0
bot 0 gives low to output 2 and high to output 0
value 2 goes to bot 2
`

func mustParse(t *testing.T, text string) *InstructionSet {
	t.Helper()
	set, err := ParseInstructions(strings.NewReader(text))
	require.NoError(t, err)
	return set
}

func mustRun(t *testing.T, set *InstructionSet, cfg Config, seed int64) *Simulator {
	t.Helper()
	s, err := NewSimulator(set, cfg, NewPartitionedRNG(NewSimulationKey(seed)))
	require.NoError(t, err)
	require.NoError(t, s.Run())
	return s
}

// generateNetwork renders a random well-formed instruction file with n bots.
// Bots form a DAG in a shuffled id order; every bot receives exactly two chips,
// every output bin is written once, and all chip values are distinct.
// Lines are emitted in random order to exercise order-independent loading.
func generateNetwork(rng *rand.Rand, n int) (text string, seeded []int) {
	ids := rng.Perm(n)
	capacity := make([]int, n) // remaining incoming slots, by topological position
	for i := range capacity {
		capacity[i] = 2
	}
	nextOutput := 0
	lines := make([]string, 0, 3*n)

	target := func(pos int) string {
		var open []int
		for j := pos + 1; j < n; j++ {
			if capacity[j] > 0 {
				open = append(open, j)
			}
		}
		if len(open) > 0 && rng.Intn(3) > 0 {
			j := open[rng.Intn(len(open))]
			capacity[j]--
			return fmt.Sprintf("bot %d", ids[j])
		}
		nextOutput++
		return fmt.Sprintf("output %d", nextOutput-1)
	}

	for pos := 0; pos < n; pos++ {
		low := target(pos)
		high := target(pos)
		lines = append(lines, fmt.Sprintf("bot %d gives low to %s and high to %s", ids[pos], low, high))
	}

	values := rng.Perm(10 * n)
	v := 0
	for pos := 0; pos < n; pos++ {
		for capacity[pos] > 0 {
			capacity[pos]--
			value := values[v] + 1
			v++
			seeded = append(seeded, value)
			lines = append(lines, fmt.Sprintf("value %d goes to bot %d", value, ids[pos]))
		}
	}

	rng.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
	return strings.Join(lines, "\n") + "\n", seeded
}
