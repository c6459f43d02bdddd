package grammar

import "sync"

var (
	tableOnce      sync.Once
	table          *Table
	tableConflicts []Conflict
)

func build() {
	automaton := BuildAutomaton()
	table, tableConflicts = BuildTable(automaton)
}

// ParseTable returns the process-wide parse table, building the canonical LR(1)
// automaton and projecting it on first use (guarded by sync.Once so the
// CLI and the test suite share one construction, as called for by the
// "built once per process, immutable thereafter" lifecycle). Any
// shift/reduce or reduce/reduce conflict this grammar has is resolved
// deterministically by BuildTable itself (see its doc comment); use
// Conflicts to inspect what, if anything, was resolved.
func ParseTable() *Table {
	tableOnce.Do(build)
	return table
}

// Conflicts returns the conflicts BuildTable resolved while constructing
// the process-wide table, forcing the build if it hasn't happened yet.
// A well-formed K&R grammar is expected to have exactly the classic
// dangling-else shift/reduce conflict here; anything else is worth
// investigating as a grammar transcription bug.
func Conflicts() []Conflict {
	tableOnce.Do(build)
	return tableConflicts
}
