package sim

import "errors"

// Input-format errors, returned by the loader.
var (
	// ErrParse marks a line that carries an instruction keyword but not the
	// integers or target kinds the instruction needs.
	ErrParse = errors.New("malformed instruction")
	// ErrDuplicateRoute marks a second routing rule for the same bot.
	ErrDuplicateRoute = errors.New("duplicate routing rule")
)

// Configuration errors, returned by the engine. None of them are retryable.
var (
	// ErrMissingRoute: a bot holds two chips but owns no (remaining) routing rule.
	ErrMissingRoute = errors.New("bot has no routing rule")
	// ErrNoProgress: routing rules remain but no bot holds two chips.
	ErrNoProgress = errors.New("no bot is ready while routing rules remain")
	// ErrOverfull: a bot would receive a third chip.
	ErrOverfull = errors.New("bot would hold more than two chips")
	// ErrMissingOutput: an output bin queried for a product was never filled.
	ErrMissingOutput = errors.New("output bin is empty")
	// ErrProductOverflow: the product of the queried bins does not fit in an int.
	ErrProductOverflow = errors.New("output product overflows int")
)
