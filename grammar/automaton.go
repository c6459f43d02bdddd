package grammar

// StateID identifies a state in the canonical automaton. State 0 is always
// the start state.
type StateID int

// State is one node of the canonical LR(1) state machine: its item set
// (the closure, not just the kernel -- keeping the full set simplifies the
// parse-table projector, which only ever needs to look at reducible items
// and outgoing transitions) and the transitions leaving it.
type State struct {
	ID          StateID
	Items       []Item
	Transitions map[Symbol]StateID
}

// Automaton is the canonical LR(1) state machine built over the static
// grammar.
type Automaton struct {
	States []*State
	Start  StateID
}

// BuildAutomaton constructs the canonical LR(1) automaton with the
// standard worklist algorithm: start from the closure of the augmented
// start item, and repeatedly compute goto(state, symbol) for every symbol
// that appears after a dot in some item of state, adding newly discovered
// item sets as new states and deduplicating by item-set equality (not just
// kernel equality, since this is canonical LR(1) and two states with the
// same core but different lookaheads are genuinely different states).
//
// Symbols are tried in their numeric enum order within a state, which
// fixes state numbering deterministically across runs -- the same
// property the teacher's generate_states-style worklist gets from a fixed
// iteration order.
func BuildAutomaton() *Automaton {
	startItem := newItem(AugmentedStartRule, 0, newSymbolSet(SymEOF))
	startItems := closure([]Item{startItem})

	a := &Automaton{}
	seen := map[itemSetID]StateID{}

	addState := func(items []Item) (StateID, bool) {
		id := idOfItemSet(items)
		if sid, ok := seen[id]; ok {
			return sid, false
		}
		sid := StateID(len(a.States))
		seen[id] = sid
		a.States = append(a.States, &State{
			ID:          sid,
			Items:       items,
			Transitions: map[Symbol]StateID{},
		})
		return sid, true
	}

	startID, _ := addState(startItems)
	a.Start = startID

	worklist := []StateID{startID}
	for len(worklist) > 0 {
		sid := worklist[0]
		worklist = worklist[1:]
		state := a.States[sid]

		// Collect outgoing symbols from the current item set, then sort by
		// their numeric enum value for deterministic iteration.
		symSeen := map[Symbol]struct{}{}
		syms := []Symbol{}
		for _, it := range state.Items {
			sym, ok := it.dottedSymbol()
			if !ok {
				continue
			}
			if _, ok := symSeen[sym]; !ok {
				symSeen[sym] = struct{}{}
				syms = append(syms, sym)
			}
		}
		for i := 1; i < len(syms); i++ {
			for j := i; j > 0 && syms[j-1] > syms[j]; j-- {
				syms[j-1], syms[j] = syms[j], syms[j-1]
			}
		}

		for _, sym := range syms {
			var kernel []Item
			for _, it := range state.Items {
				dotted, ok := it.dottedSymbol()
				if !ok || dotted != sym {
					continue
				}
				kernel = append(kernel, it.advance())
			}
			target := closure(kernel)
			tid, isNew := addState(target)
			state.Transitions[sym] = tid
			if isNew {
				worklist = append(worklist, tid)
			}
		}
	}

	return a
}
