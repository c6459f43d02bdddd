package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// ActionKind distinguishes the four possible parse-table cell contents.
type ActionKind int

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one parse-table cell: what the driver should do when the
// current state and the lookahead terminal match this cell.
type Action struct {
	Kind  ActionKind
	State StateID // valid when Kind == ActionShift
	Rule  RuleID  // valid when Kind == ActionReduce
}

// ConflictKind distinguishes the two ways a cell can be over-determined.
type ConflictKind int

const (
	ShiftReduceConflict ConflictKind = iota
	ReduceReduceConflict
)

// Conflict records a grammar ambiguity discovered while projecting the
// automaton into a table: two productions (or a shift and a reduce)
// compete for the same (state, terminal) cell. BuildTable always resolves
// the cell (shift beats reduce, earlier rule beats later rule -- the same
// policy yacc/bison apply to the real ANSI C grammar, which has the
// identical dangling-else shift/reduce conflict this one does); Conflict
// records what was resolved and how, for auditing.
type Conflict struct {
	Kind     ConflictKind
	State    StateID
	Terminal Symbol
	Existing Action
	Proposed Action
}

func (c Conflict) String() string {
	kind := "shift/reduce"
	if c.Kind == ReduceReduceConflict {
		kind = "reduce/reduce"
	}
	return fmt.Sprintf("%s conflict in state %d on %s", kind, c.State, c.Terminal)
}

// Table is the dense [state][symbol] parse table projected from an
// Automaton: an Action cell for every terminal (shift/reduce/accept) and a
// goto state for every non-terminal.
type Table struct {
	numStates int
	action    []Action   // numStates * number of terminals
	goTo      []StateID  // numStates * number of non-terminals, -1 = no entry
	Start     StateID
}

const noGoto = StateID(-1)

func numTerminals() int {
	return int(Invalid)
}

func nonTerminalIndex(sym Symbol) int {
	return int(sym) - int(Invalid) - 1
}

func numNonTerminals() int {
	return int(symbolCount) - int(Invalid) - 1
}

func (t *Table) actionIndex(s StateID, term Symbol) int {
	return int(s)*numTerminals() + int(term)
}

func (t *Table) gotoIndex(s StateID, nonTerm Symbol) int {
	return int(s)*numNonTerminals() + nonTerminalIndex(nonTerm)
}

// Action returns the action to take in state s on lookahead terminal term.
func (t *Table) Action(s StateID, term Symbol) Action {
	return t.action[t.actionIndex(s, term)]
}

// Goto returns the state to transition to after reducing to non-terminal
// nonTerm while in state s. The second return value is false if there is
// no such entry (which, for a table built from a conflict-free grammar,
// only happens for malformed input the driver should never actually ask
// about).
func (t *Table) Goto(s StateID, nonTerm Symbol) (StateID, bool) {
	sid := t.goTo[t.gotoIndex(s, nonTerm)]
	if sid == noGoto {
		return 0, false
	}
	return sid, true
}

// ExpectedTerminals returns the sorted set of terminals that have a
// non-error action in state s, for syntax-error reporting.
func (t *Table) ExpectedTerminals(s StateID) []Symbol {
	set := SymbolSet{}
	for term := Symbol(0); term < Invalid; term++ {
		if t.Action(s, term).Kind != ActionError {
			set.add(term)
		}
	}
	return set.sortedSymbols()
}

// NumStates reports how many states the table covers.
func (t *Table) NumStates() int {
	return t.numStates
}

// BuildTable projects an Automaton into a dense parse table. A cell
// assigned more than once -- a shift/reduce or reduce/reduce conflict --
// is resolved deterministically (see setAction below) and also collected
// into the returned conflict list, so a caller that wants to treat
// unexpected ambiguity as a build-time error can inspect exactly which
// cells needed resolving.
func BuildTable(a *Automaton) (*Table, []Conflict) {
	t := &Table{
		numStates: len(a.States),
		Start:     a.Start,
	}
	t.action = make([]Action, t.numStates*numTerminals())
	t.goTo = make([]StateID, t.numStates*numNonTerminals())
	for i := range t.goTo {
		t.goTo[i] = noGoto
	}

	var conflicts []Conflict

	// setAction resolves a cell that two items both want to populate the
	// way yacc/bison resolve the same conflicts in the real ANSI C
	// grammar: shift wins over reduce (this is what makes dangling-else
	// bind to the nearest unmatched if, and what lets ambiguous
	// expression grammars parse at all without a precedence table), and
	// between two reduces the earlier-declared rule wins. Every
	// resolution is still recorded in the returned conflict list so a
	// caller can audit exactly where the grammar relies on this
	// resolution instead of being genuinely unambiguous.
	setAction := func(s StateID, term Symbol, proposed Action) {
		idx := t.actionIndex(s, term)
		existing := t.action[idx]
		if existing.Kind == ActionError {
			t.action[idx] = proposed
			return
		}
		if existing == proposed {
			return
		}

		var kind ConflictKind
		var resolved Action
		switch {
		case existing.Kind == ActionAccept || proposed.Kind == ActionAccept:
			kind = ShiftReduceConflict
			resolved = Action{Kind: ActionAccept}
		case existing.Kind == ActionShift || proposed.Kind == ActionShift:
			kind = ShiftReduceConflict
			resolved = existing
			if existing.Kind != ActionShift {
				resolved = proposed
			}
		default:
			kind = ReduceReduceConflict
			resolved = existing
			if proposed.Rule < existing.Rule {
				resolved = proposed
			}
		}

		t.action[idx] = resolved
		conflicts = append(conflicts, Conflict{
			Kind: kind, State: s, Terminal: term,
			Existing: existing, Proposed: proposed,
		})
	}

	for _, state := range a.States {
		for sym, target := range state.Transitions {
			if sym.IsTerminal() {
				setAction(state.ID, sym, Action{Kind: ActionShift, State: target})
			} else {
				t.goTo[t.gotoIndex(state.ID, sym)] = target
			}
		}
		for _, it := range state.Items {
			if !it.reducible() {
				continue
			}
			if it.Rule == AugmentedStartRule {
				setAction(state.ID, SymEOF, Action{Kind: ActionAccept})
				continue
			}
			for term := range it.Lookahead {
				setAction(state.ID, term, Action{Kind: ActionReduce, Rule: it.Rule})
			}
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].State != conflicts[j].State {
			return conflicts[i].State < conflicts[j].State
		}
		return conflicts[i].Terminal < conflicts[j].Terminal
	})

	return t, conflicts
}

// Describe renders a human-readable dump of the table, grouped by state --
// grounded on the teacher's parsing_table.go writeDescription, useful for
// debugging a grammar change without a debugger.
func (t *Table) Describe() string {
	var b strings.Builder
	for s := 0; s < t.numStates; s++ {
		fmt.Fprintf(&b, "state %d:\n", s)
		for term := Symbol(0); term < Invalid; term++ {
			act := t.Action(StateID(s), term)
			switch act.Kind {
			case ActionShift:
				fmt.Fprintf(&b, "  on %s: shift %d\n", term, act.State)
			case ActionReduce:
				fmt.Fprintf(&b, "  on %s: reduce %s\n", term, rules[act.Rule].Head)
			case ActionAccept:
				fmt.Fprintf(&b, "  on %s: accept\n", term)
			}
		}
		for sym := Invalid + 1; sym < symbolCount; sym++ {
			if sid, ok := t.Goto(StateID(s), sym); ok {
				fmt.Fprintf(&b, "  goto %s: %d\n", sym, sid)
			}
		}
	}
	return b.String()
}
