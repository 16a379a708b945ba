package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every bot firing and output deposit.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	Config      TraceConfig
	Comparisons []ComparisonRecord
	Deposits    []DepositRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Comparisons: make([]ComparisonRecord, 0),
		Deposits:    make([]DepositRecord, 0),
	}
}

// RecordComparison appends a bot firing record.
func (st *SimulationTrace) RecordComparison(record ComparisonRecord) {
	st.Comparisons = append(st.Comparisons, record)
}

// RecordDeposit appends an output deposit record.
func (st *SimulationTrace) RecordDeposit(record DepositRecord) {
	st.Deposits = append(st.Deposits, record)
}
