// Defines the instruction model: seed assignments and per-bot routing rules.

package sim

import "fmt"

// DestinationKind tags the target of one half of a routing rule.
type DestinationKind string

const (
	KindBot    DestinationKind = "bot"
	KindOutput DestinationKind = "output"
)

// Destination is where a bot sends one of its chips: another bot or an output bin.
type Destination struct {
	Kind DestinationKind
	ID   int
}

// ToBot returns a Destination targeting bot id.
func ToBot(id int) Destination {
	return Destination{Kind: KindBot, ID: id}
}

// ToOutput returns a Destination targeting output bin id.
func ToOutput(id int) Destination {
	return Destination{Kind: KindOutput, ID: id}
}

func (d Destination) String() string {
	return fmt.Sprintf("%s %d", d.Kind, d.ID)
}

// Seed places an initial chip value in a bot.
type Seed struct {
	Bot   int
	Value int
}

// Route is the routing rule of a single bot. It fires exactly once, when the
// bot first holds two chips: the lower chip goes to Low, the higher to High.
type Route struct {
	Bot  int
	Low  Destination
	High Destination
}

func (r Route) String() string {
	return fmt.Sprintf("bot %d: low -> %s, high -> %s", r.Bot, r.Low, r.High)
}

// InstructionSet is the parsed content of an instruction file.
// Seeds keep file order; Routes are keyed by source bot.
type InstructionSet struct {
	Seeds  []Seed
	Routes map[int]Route
}

// NewInstructionSet returns an empty InstructionSet ready for population.
func NewInstructionSet() *InstructionSet {
	return &InstructionSet{
		Seeds:  make([]Seed, 0),
		Routes: make(map[int]Route),
	}
}

// AddSeed appends a seed assignment.
func (s *InstructionSet) AddSeed(seed Seed) {
	s.Seeds = append(s.Seeds, seed)
}

// AddRoute registers a routing rule. A bot may own at most one rule.
func (s *InstructionSet) AddRoute(r Route) error {
	if existing, ok := s.Routes[r.Bot]; ok {
		return fmt.Errorf("%w: bot %d already has rule %q", ErrDuplicateRoute, r.Bot, existing)
	}
	s.Routes[r.Bot] = r
	return nil
}
