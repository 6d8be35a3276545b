// SPDX-License-Identifier: MIT

package structure

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateDecomposition reports that at least one bracket decomposed
	// onto more than one basis element. Returned (wrapped in *DegenerateError)
	// only under WithStrict.
	ErrDegenerateDecomposition = errors.New("structure: degenerate decomposition")

	// ErrRankDeficient reports that the basis elements are not linearly
	// independent, so coefficients are not unique.
	ErrRankDeficient = errors.New("structure: basis is rank deficient")
)

// DegenerateError lists every degenerate pair found while building a table.
type DegenerateError struct {
	Kind         string
	Degeneracies []Degeneracy
}

// Error implements error.
func (e *DegenerateError) Error() string {
	if len(e.Degeneracies) == 0 {
		return fmt.Sprintf("%s: %s", ErrDegenerateDecomposition, e.Kind)
	}
	first := e.Degeneracies[0]

	return fmt.Sprintf("%s: %s: %d pairs, first (%d,%d) with %d terms",
		ErrDegenerateDecomposition, e.Kind, len(e.Degeneracies),
		first.Pair.I, first.Pair.J, len(first.Terms))
}

// Unwrap makes errors.Is(err, ErrDegenerateDecomposition) hold.
func (e *DegenerateError) Unwrap() error { return ErrDegenerateDecomposition }
