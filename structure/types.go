package structure

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lielath/matrix"
)

// Pair is an ordered pair of basis indices (i, j).
type Pair struct {
	I, J int
}

// Term is one component x·T_K of a decomposition.
type Term struct {
	K     int
	Value complex128
}

// Degeneracy records a pair whose bracket has more than one nonzero
// component.
type Degeneracy struct {
	Pair  Pair
	Terms []Term
}

// Table is an immutable sparse coefficient table over a basis of Size
// elements. Pairs whose bracket is numerically zero are absent.
type Table struct {
	kind       string
	size       int
	terms      map[Pair][]Term
	pairs      []Pair
	degenerate []Degeneracy
}

func newTable(kind string, size int) *Table {
	return &Table{kind: kind, size: size, terms: make(map[Pair][]Term)}
}

// NewTable builds a table from single-term entries, for example one decoded
// from storage. Every index must lie in [0, size).
//
// Errors:
//   - matrix.ErrInvalidParameter if size < 0.
//   - matrix.ErrOutOfRange if an index lies outside [0, size).
func NewTable(size int, entries map[Pair]Term) (*Table, error) {
	if size < 0 {
		return nil, fmt.Errorf("structure: NewTable: size %d: %w", size, matrix.ErrInvalidParameter)
	}
	t := newTable("table", size)
	for p, term := range entries {
		if !t.inRange(p.I) || !t.inRange(p.J) || !t.inRange(term.K) {
			return nil, fmt.Errorf("structure: NewTable: entry (%d,%d)->%d: %w", p.I, p.J, term.K, matrix.ErrOutOfRange)
		}
		t.put(p, []Term{term})
	}
	t.seal()

	return t, nil
}

func (t *Table) inRange(k int) bool { return k >= 0 && k < t.size }

func (t *Table) put(p Pair, terms []Term) {
	t.terms[p] = terms
	t.pairs = append(t.pairs, p)
}

// seal sorts the pair index; called once construction is done.
func (t *Table) seal() {
	slices.SortFunc(t.pairs, func(a, b Pair) int {
		if a.I != b.I {
			return a.I - b.I
		}

		return a.J - b.J
	})
}

// Len returns the number of pairs with a nonzero bracket.
func (t *Table) Len() int { return len(t.pairs) }

// Size returns the number of basis elements the table was built over.
func (t *Table) Size() int { return t.size }

// Get returns the leading term (lowest K) of pair (i, j).
func (t *Table) Get(i, j int) (Term, bool) {
	terms, ok := t.terms[Pair{i, j}]
	if !ok {
		return Term{}, false
	}

	return terms[0], true
}

// Terms returns a copy of the full sparse decomposition of pair (i, j),
// sorted by K, or nil if the pair is absent.
func (t *Table) Terms(i, j int) []Term {
	return slices.Clone(t.terms[Pair{i, j}])
}

// Pairs returns the present pairs sorted by (I, J).
func (t *Table) Pairs() []Pair { return slices.Clone(t.pairs) }

// Map returns the leading-term view as a fresh map.
func (t *Table) Map() map[Pair]Term {
	out := make(map[Pair]Term, len(t.terms))
	for p, terms := range t.terms {
		out[p] = terms[0]
	}

	return out
}

// Degenerate returns the pairs that decomposed onto more than one element,
// in (I, J) order.
func (t *Table) Degenerate() []Degeneracy {
	out := make([]Degeneracy, len(t.degenerate))
	for i, d := range t.degenerate {
		out[i] = Degeneracy{Pair: d.Pair, Terms: slices.Clone(d.Terms)}
	}

	return out
}

// Err returns a *DegenerateError if any degeneracy was recorded, else nil.
func (t *Table) Err() error {
	if len(t.degenerate) == 0 {
		return nil
	}

	return &DegenerateError{Kind: t.kind, Degeneracies: t.Degenerate()}
}
