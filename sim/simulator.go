// sim/simulator.go
package sim

import (
	"fmt"
	"maps"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/botsim/sim/trace"
)

// Simulator owns the state of one run: bot chip lists, pending routing rules
// and output bins. Nothing outside the simulator mutates that state.
type Simulator struct {
	Config Config
	// Metrics is updated on every seed and step
	Metrics *Metrics
	// Trace is nil unless Config.TraceLevel is "decisions"
	Trace *trace.SimulationTrace

	// bots maps bot id -> held chips (0..2); bots appear on first reference
	bots map[int][]int
	// routes shrinks by one each step; a rule never fires twice
	routes  map[int]Route
	outputs map[int]int
	// ready holds bots with exactly two chips
	ready    *ReadyQueue
	selector ReadySelector

	goalBot   int
	goalFound bool
	// comparators maps each compared pair to the first bot that compared it
	comparators map[Pair]int
	stepCount   int
}

// NewSimulator builds a simulator from a parsed instruction set and applies every
// seed in file order. set is not modified. rng feeds the "random" selector and
// may be nil for the others.
func NewSimulator(set *InstructionSet, cfg Config, rng *PartitionedRNG) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s := &Simulator{
		Config:      cfg,
		Metrics:     NewMetrics(),
		bots:        make(map[int][]int),
		routes:      maps.Clone(set.Routes),
		outputs:     make(map[int]int),
		ready:       &ReadyQueue{},
		selector:    NewSelector(cfg.Selector, rng),
		comparators: make(map[Pair]int),
	}
	if s.routes == nil {
		s.routes = make(map[int]Route)
	}
	if cfg.TraceLevel == trace.TraceLevelDecisions {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}

	for _, seed := range set.Seeds {
		if err := s.give(seed.Bot, seed.Value); err != nil {
			return nil, fmt.Errorf("seeding value %d: %w", seed.Value, err)
		}
		s.Metrics.ChipsSeeded++
	}
	if cfg.Selector == "random" && rng != nil {
		logrus.Infof("Random selector seeded with simulation key %d", rng.Key())
	}
	logrus.Infof("Seeded %d chips across %d bots; %d routing rules pending", len(set.Seeds), len(s.bots), len(s.routes))
	return s, nil
}

// Run fires ready bots until every routing rule has been consumed.
// It does not stop at the goal bot: output bins may still be filling.
func (s *Simulator) Run() error {
	for !s.Done() {
		if err := s.Step(); err != nil {
			return err
		}
	}
	logrus.Infof("[step %05d] Simulation ended", s.stepCount)
	return nil
}

// Done reports whether every routing rule has fired.
func (s *Simulator) Done() bool {
	return len(s.routes) == 0
}

// Step fires one ready bot: its lower chip goes to the rule's low destination,
// the higher to the high destination, and the rule is consumed.
// Step is a no-op once Done.
func (s *Simulator) Step() error {
	if s.Done() {
		return nil
	}
	s.ready.Reorder(s.selector.OrderQueue)
	logrus.Debugf("[step %05d] ready bots %s", s.stepCount+1, s.ready)
	bot, ok := s.ready.Dequeue()
	if !ok {
		return fmt.Errorf("%w: %d rules pending", ErrNoProgress, len(s.routes))
	}
	route, ok := s.routes[bot]
	if !ok {
		return fmt.Errorf("%w: bot %d", ErrMissingRoute, bot)
	}
	chips := s.bots[bot]
	if len(chips) != 2 {
		panic(fmt.Sprintf("Step: ready bot %d holds %d chips", bot, len(chips)))
	}

	low, high := min(chips[0], chips[1]), max(chips[0], chips[1])
	pair := NewPair(low, high)
	if _, seen := s.comparators[pair]; !seen {
		s.comparators[pair] = bot
	}
	isGoal := pair == s.Config.GoalPair
	if isGoal && !s.goalFound {
		s.goalBot, s.goalFound = bot, true
		logrus.Infof("[step %05d] Goal bot %d compares %s", s.stepCount+1, bot, pair)
	}

	// Drain and retire before dispatching so a self-targeting rule cannot
	// see its own chips.
	s.bots[bot] = chips[:0]
	delete(s.routes, bot)
	s.stepCount++
	s.Metrics.Steps++
	logrus.Debugf("[step %05d] bot %d: %d -> %s, %d -> %s", s.stepCount, bot, low, route.Low, high, route.High)

	if s.Trace != nil {
		s.Trace.RecordComparison(trace.ComparisonRecord{
			Step:   s.stepCount,
			Bot:    bot,
			Low:    low,
			High:   high,
			LowTo:  trace.Target{Kind: string(route.Low.Kind), ID: route.Low.ID},
			HighTo: trace.Target{Kind: string(route.High.Kind), ID: route.High.ID},
			Goal:   isGoal,
		})
	}

	if err := s.dispatch(low, route.Low); err != nil {
		return fmt.Errorf("bot %d low chip: %w", bot, err)
	}
	if err := s.dispatch(high, route.High); err != nil {
		return fmt.Errorf("bot %d high chip: %w", bot, err)
	}
	return nil
}

func (s *Simulator) dispatch(value int, dest Destination) error {
	switch dest.Kind {
	case KindBot:
		s.Metrics.ChipsRouted++
		return s.give(dest.ID, value)
	case KindOutput:
		_, replaced := s.outputs[dest.ID]
		s.outputs[dest.ID] = value
		s.Metrics.ChipsDeposited++
		if replaced {
			s.Metrics.BinsOverwritten++
			logrus.Warnf("[step %05d] output %d overwritten with %d", s.stepCount, dest.ID, value)
		}
		if s.Trace != nil {
			s.Trace.RecordDeposit(trace.DepositRecord{Step: s.stepCount, Output: dest.ID, Value: value, Replaced: replaced})
		}
		return nil
	default:
		panic(fmt.Sprintf("dispatch: unknown destination kind %q", dest.Kind))
	}
}

// give hands a chip to a bot. A bot reaching two chips joins the ready queue
// and must own a pending routing rule at that moment.
func (s *Simulator) give(bot, value int) error {
	chips := s.bots[bot]
	if len(chips) >= 2 {
		return fmt.Errorf("%w: bot %d holds %v, got %d", ErrOverfull, bot, chips, value)
	}
	chips = append(chips, value)
	s.bots[bot] = chips
	if len(chips) < 2 {
		return nil
	}
	if _, ok := s.routes[bot]; !ok {
		return fmt.Errorf("%w: bot %d holds %v", ErrMissingRoute, bot, chips)
	}
	s.ready.Enqueue(bot)
	s.Metrics.PeakReadyDepth = max(s.Metrics.PeakReadyDepth, s.ready.Len())
	return nil
}

// StepCount returns the number of bots fired so far.
func (s *Simulator) StepCount() int {
	return s.stepCount
}

// PendingRoutes returns the number of routing rules that have not fired.
func (s *Simulator) PendingRoutes() int {
	return len(s.routes)
}

// GoalBot returns the first bot that compared the goal pair.
func (s *Simulator) GoalBot() (int, bool) {
	return s.goalBot, s.goalFound
}

// Comparator returns the first bot that compared values a and b, in either order.
func (s *Simulator) Comparator(a, b int) (int, bool) {
	bot, ok := s.comparators[NewPair(a, b)]
	return bot, ok
}

// Output returns the chip in output bin id.
func (s *Simulator) Output(id int) (int, bool) {
	v, ok := s.outputs[id]
	return v, ok
}

// Outputs returns a copy of every filled output bin.
func (s *Simulator) Outputs() map[int]int {
	return maps.Clone(s.outputs)
}

// HeldChips returns a copy of the chips still held by bots, omitting empty bots.
// It is empty after a complete run of a well-formed instruction set.
func (s *Simulator) HeldChips() map[int][]int {
	held := make(map[int][]int)
	for bot, chips := range s.bots {
		if len(chips) > 0 {
			held[bot] = append([]int(nil), chips...)
		}
	}
	return held
}

// OutputProduct multiplies the chips in the given output bins.
// Chip values are non-negative, so only the upper bound needs checking.
func (s *Simulator) OutputProduct(ids ...int) (int, error) {
	product := 1
	for _, id := range ids {
		v, ok := s.outputs[id]
		if !ok {
			return 0, fmt.Errorf("%w: output %d", ErrMissingOutput, id)
		}
		if v != 0 && product > math.MaxInt/v {
			return 0, fmt.Errorf("%w: %d * %d (output %d)", ErrProductOverflow, product, v, id)
		}
		product *= v
	}
	return product, nil
}

// GoalProduct multiplies the chips in the configured goal output bins.
func (s *Simulator) GoalProduct() (int, error) {
	return s.OutputProduct(s.Config.GoalOutputs...)
}
