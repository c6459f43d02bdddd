package grammar

import "testing"

func TestBuildAutomaton_StartStateIsClosureOfAugmentedStart(t *testing.T) {
	a := BuildAutomaton()
	start := a.States[a.Start]

	found := false
	for _, it := range start.Items {
		if it.Rule == AugmentedStartRule && it.Dot == 0 {
			found = true
			if !it.Lookahead.has(SymEOF) {
				t.Fatalf("augmented start item lookahead = %v, want {$}", it.Lookahead)
			}
		}
	}
	if !found {
		t.Fatal("start state missing the augmented start item")
	}
}

func TestBuildAutomaton_DeterministicStateCount(t *testing.T) {
	a1 := BuildAutomaton()
	a2 := BuildAutomaton()
	if len(a1.States) != len(a2.States) {
		t.Fatalf("state count not deterministic: %d vs %d", len(a1.States), len(a2.States))
	}
}

func TestBuildAutomaton_NoDuplicateItemSets(t *testing.T) {
	a := BuildAutomaton()
	seen := map[itemSetID]StateID{}
	for _, s := range a.States {
		id := idOfItemSet(s.Items)
		if other, ok := seen[id]; ok {
			t.Fatalf("states %d and %d have identical item sets", other, s.ID)
		}
		seen[id] = s.ID
	}
}

func TestClosure_ExpandsNonTerminalDot(t *testing.T) {
	startItem := newItem(AugmentedStartRule, 0, newSymbolSet(SymEOF))
	items := closure([]Item{startItem})

	sawExternalDeclaration := false
	for _, it := range items {
		if rules[it.Rule].Head == SymExternalDeclaration && it.Dot == 0 {
			sawExternalDeclaration = true
		}
	}
	if !sawExternalDeclaration {
		t.Fatal("closure of the augmented start item did not expand external-declaration")
	}
}
