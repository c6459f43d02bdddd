package grammar

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"
)

// Item is a canonical LR(1) item: a production with a cursor position and an
// explicit lookahead set. Within one item set, closure keeps a single Item
// per (rule, dot) and unions the lookaheads of all items with that core into
// it; items that differ only in lookahead are not kept as separate members.
// Unlike the teacher's LALR(1) construction, states are never merged: two
// item sets with the same cores but different lookaheads are different
// states.
type Item struct {
	Rule      RuleID
	Dot       int
	Lookahead SymbolSet
}

func newItem(rule RuleID, dot int, lookahead SymbolSet) Item {
	return Item{Rule: rule, Dot: dot, Lookahead: lookahead}
}

// dottedSymbol returns the symbol immediately after the dot, or ok=false if
// the dot is at the end of the production (the item is reducible).
func (it Item) dottedSymbol() (Symbol, bool) {
	body := rules[it.Rule].Body
	if it.Dot >= len(body) {
		return Invalid, false
	}
	return body[it.Dot], true
}

func (it Item) reducible() bool {
	_, ok := it.dottedSymbol()
	return !ok
}

func (it Item) advance() Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// itemKey identifies an item without its lookahead, used to find (and
// union lookahead into) an existing item in a growing item set during
// closure.
type itemKey struct {
	rule RuleID
	dot  int
}

func (it Item) key() itemKey {
	return itemKey{rule: it.Rule, dot: it.Dot}
}

// closure computes the canonical LR(1) closure of a kernel item set,
// following the textbook algorithm named in the grammar's item-set closure
// component: repeatedly, for every item [A -> alpha . B beta, a] with B a
// non-terminal, and every production B -> gamma, add [B -> . gamma, b] for
// every b in FIRST(beta a) -- beta's FIRST set, or {a} if beta is empty
// (the C grammar has no epsilon bodies, so "beta is empty" here only ever
// means B is the last symbol of the body, and FIRST(beta) is FIRST of
// beta's first symbol).
func closure(kernel []Item) []Item {
	byKey := map[itemKey]SymbolSet{}
	order := []itemKey{}

	addItem := func(it Item) {
		key := it.key()
		set, ok := byKey[key]
		if !ok {
			set = SymbolSet{}
			byKey[key] = set
			order = append(order, key)
		}
		set.addAll(it.Lookahead)
	}

	for _, it := range kernel {
		addItem(it)
	}

	for {
		changed := false
		// Snapshot current keys: closure may add new keys while iterating.
		keys := append([]itemKey{}, order...)
		for _, key := range keys {
			body := rules[key.rule].Body
			if key.dot >= len(body) {
				continue
			}
			b := body[key.dot]
			if b.IsTerminal() {
				continue
			}

			follow := SymbolSet{}
			rest := body[key.dot+1:]
			if len(rest) == 0 {
				follow.addAll(byKey[key])
			} else if rest[0].IsTerminal() {
				follow.add(rest[0])
			} else {
				follow.addAll(HeadTerminals(rest[0]))
			}

			for ruleID, r := range rules {
				if r.Head != b {
					continue
				}
				newKey := itemKey{rule: RuleID(ruleID), dot: 0}
				existing, ok := byKey[newKey]
				if !ok {
					existing = SymbolSet{}
					byKey[newKey] = existing
					order = append(order, newKey)
					changed = true
				}
				if existing.addAll(follow) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	out := make([]Item, 0, len(order))
	for _, key := range order {
		out = append(out, Item{Rule: key.rule, Dot: key.dot, Lookahead: byKey[key]})
	}
	return out
}

// itemSetID is a content hash of an item set, used to deduplicate states
// during automaton construction the way the teacher's kernelID deduplicates
// LALR(1) kernels -- except here the full item set (lookaheads included)
// participates in the hash, since canonical LR(1) states are distinguished
// by lookahead, not just by core.
type itemSetID [sha256.Size]byte

func idOfItemSet(items []Item) itemSetID {
	type sortable struct {
		key  itemKey
		las  []int
	}
	entries := make([]sortable, 0, len(items))
	for _, it := range items {
		las := make([]int, 0, len(it.Lookahead))
		for sym := range it.Lookahead {
			las = append(las, int(sym))
		}
		sort.Ints(las)
		entries = append(entries, sortable{key: it.key(), las: las})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key.rule != entries[j].key.rule {
			return entries[i].key.rule < entries[j].key.rule
		}
		return entries[i].key.dot < entries[j].key.dot
	})

	h := sha256.New()
	buf := make([]byte, 8)
	for _, e := range entries {
		binary.BigEndian.PutUint64(buf, uint64(e.key.rule))
		h.Write(buf)
		binary.BigEndian.PutUint64(buf, uint64(e.key.dot))
		h.Write(buf)
		for _, la := range e.las {
			binary.BigEndian.PutUint64(buf, uint64(la))
			h.Write(buf)
		}
		h.Write([]byte{0xff})
	}

	var id itemSetID
	copy(id[:], h.Sum(nil))
	return id
}
