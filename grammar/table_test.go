package grammar

import "testing"

// TestTable_OnlyExpectedConflict checks that the transcribed K&R grammar
// has exactly the conflicts a correct transcription should have: the
// classic dangling-else shift/reduce ambiguity (selection-statement's
// "if ( expression ) statement" vs "... statement else statement"), and
// nothing else. A reduce/reduce conflict, or any shift/reduce conflict
// outside this one rule, means the grammar table was mis-transcribed.
func TestTable_OnlyExpectedConflict(t *testing.T) {
	a := BuildAutomaton()
	_, conflicts := BuildTable(a)

	ifRule := RuleID(-1)
	for id, r := range rules {
		if r.Head == SymSelectionStatement && len(r.Body) == 5 && r.Body[0] == SymIf {
			ifRule = RuleID(id)
			break
		}
	}
	if ifRule < 0 {
		t.Fatal("could not locate the unmatched-if selection-statement rule")
	}

	for _, c := range conflicts {
		if c.Kind != ShiftReduceConflict {
			t.Errorf("unexpected reduce/reduce conflict: %s", c)
			continue
		}
		reduce := c.Existing
		if reduce.Kind != ActionReduce {
			reduce = c.Proposed
		}
		if reduce.Kind != ActionReduce || reduce.Rule != ifRule || c.Terminal != SymElse {
			t.Errorf("unexpected conflict: %s", c)
		}
	}
}

func TestTable_StartStateHasNoErrorOnlyRow(t *testing.T) {
	a := BuildAutomaton()
	table, _ := BuildTable(a)
	expected := table.ExpectedTerminals(table.Start)
	if len(expected) == 0 {
		t.Fatal("start state accepts no terminal at all")
	}
}

// TestTable_ExpectedTerminalsAreSorted checks the P-series property that
// expected-terminal sets used for error messages are in a stable,
// ascending order.
func TestTable_ExpectedTerminalsAreSorted(t *testing.T) {
	a := BuildAutomaton()
	table, _ := BuildTable(a)
	expected := table.ExpectedTerminals(table.Start)
	for i := 1; i < len(expected); i++ {
		if expected[i-1] >= expected[i] {
			t.Fatalf("expected terminals not strictly ascending at %d: %v", i, expected)
		}
	}
}

func TestCompactTable_RoundTripsActions(t *testing.T) {
	a := BuildAutomaton()
	table, _ := BuildTable(a)
	compact, err := NewCompactActionTable(table)
	if err != nil {
		t.Fatal(err)
	}
	for s := 0; s < table.NumStates(); s++ {
		for term := Symbol(0); term < Invalid; term++ {
			want := table.Action(StateID(s), term)
			got, err := compact.Action(StateID(s), term)
			if err != nil {
				t.Fatalf("state %d term %v: %v", s, term, err)
			}
			if got != want {
				t.Fatalf("state %d term %v: compact table = %+v, want %+v", s, term, got, want)
			}
		}
	}
}
