package grammar

import (
	"fmt"
	"sort"
)

// CompactTable is a row-displacement encoding of a Table's action array:
// rows are packed into a single shared array, overlapping wherever their
// non-error cells don't collide, the way the teacher's
// compressor.RowDisplacementTable packs a generic []int table. That
// generic table operated on ints and needed a caller-supplied empty
// value because it had no notion of what a "row" or "column" of a parser
// table actually holds; here the displacement algorithm is rewritten to
// pack Action values directly, with ActionError (the zero Action kind)
// standing in as the empty cell, since a parse table's error cells are
// already this grammar's natural sentinel and there is nothing left for
// a caller to configure.
type CompactTable struct {
	originalRows    int
	originalCols    int
	entries         []Action
	bounds          []StateID // state that owns entries[i], or noBound
	rowDisplacement []StateID
}

const noBound = StateID(-1)

// NewCompactActionTable builds a row-displacement encoding of t's dense
// action table. Rows with more non-error actions are placed first, the
// same heuristic the teacher's Compress used, because a denser row is
// harder to fit without collision the later it is placed.
func NewCompactActionTable(t *Table) (*CompactTable, error) {
	rows := t.numStates
	cols := numTerminals()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("grammar: cannot compress an empty table (%d states, %d terminals)", rows, cols)
	}

	type rowInfo struct {
		state      StateID
		nonErrCols []int
	}
	infos := make([]rowInfo, rows)
	for s := 0; s < rows; s++ {
		infos[s].state = StateID(s)
		for term := 0; term < cols; term++ {
			if t.action[s*cols+term].Kind != ActionError {
				infos[s].nonErrCols = append(infos[s].nonErrCols, term)
			}
		}
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return len(infos[i].nonErrCols) > len(infos[j].nonErrCols)
	})

	total := rows * cols
	entries := make([]Action, total)
	bounds := make([]StateID, total)
	for i := range bounds {
		bounds[i] = noBound
	}
	rowDisplacement := make([]StateID, rows)
	bottom := cols

	for _, info := range infos {
		if len(info.nonErrCols) == 0 {
			continue
		}
		displacement := 0
		for {
			collides := false
			for _, col := range info.nonErrCols {
				if bounds[displacement+col] != noBound {
					displacement++
					collides = true
					break
				}
			}
			if collides {
				continue
			}
			rowDisplacement[info.state] = StateID(displacement)
			for _, col := range info.nonErrCols {
				entries[displacement+col] = t.action[int(info.state)*cols+col]
				bounds[displacement+col] = info.state
			}
			if displacement+cols > bottom {
				bottom = displacement + cols
			}
			break
		}
	}

	return &CompactTable{
		originalRows:    rows,
		originalCols:    cols,
		entries:         entries[:bottom],
		bounds:          bounds[:bottom],
		rowDisplacement: rowDisplacement,
	}, nil
}

// Action looks up the action for (state, terminal) through the
// compressed encoding, returning an error (rather than silently reading
// out of bounds) for a state/terminal pair outside the original table.
func (c *CompactTable) Action(s StateID, term Symbol) (Action, error) {
	if int(s) < 0 || int(s) >= c.originalRows || int(term) < 0 || int(term) >= c.originalCols {
		return Action{}, fmt.Errorf("grammar: state/terminal out of range: [%v, %v]", s, term)
	}
	d := int(c.rowDisplacement[s])
	if c.bounds[d+int(term)] != s {
		return Action{Kind: ActionError}, nil
	}
	return c.entries[d+int(term)], nil
}
