// Package sim provides the balance-bot routing engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - instruction.go: Seed, Route and the tagged Destination (bot or output bin)
//   - loader.go: keyword-driven parsing of instruction files
//   - simulator.go: the step loop, goal detection and post-run queries
//
// # Model
//
// A bot holds zero, one or two chips. When its second chip arrives it joins the
// ReadyQueue. Each Step fires one ready bot: the lower chip goes to the rule's
// low destination, the higher chip to its high destination, and the rule is
// consumed. Run steps until no rules remain.
//
// The order in which simultaneously ready bots fire is chosen by a
// ReadySelector ("lowest-id", "fifo", "random"). For well-formed instruction
// sets the outputs do not depend on it.
//
// Decision records (one per firing, one per output deposit) live in sim/trace
// and are collected when Config.TraceLevel is "decisions".
package sim
