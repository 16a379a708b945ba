// Package trace provides decision-trace recording for bot routing runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Target names the receiver of one chip: Kind is "bot" or "output".
type Target struct {
	Kind string
	ID   int
}

// ComparisonRecord captures a single bot firing: the two chips it compared
// and where each one went.
type ComparisonRecord struct {
	Step   int
	Bot    int
	Low    int
	High   int
	LowTo  Target
	HighTo Target
	Goal   bool // the compared pair equals the configured goal pair
}

// DepositRecord captures a chip landing in an output bin.
type DepositRecord struct {
	Step     int
	Output   int
	Value    int
	Replaced bool // the bin already held a chip (last write wins)
}
