// Package structure computes the coefficient tables of a matrix Lie algebra
// basis {T_0 … T_{s−1}} of n×n complex matrices:
//
//	structure constants  [T_i, T_j] = Σ_k f(i,j,k) T_k     (i ≠ j)
//	d-coefficients       {T_i, T_j} = Σ_k d(i,j,k) T_k     (all i, j)
//
// Both are solved by least squares against the fixed design matrix whose
// k-th column is vec(T_k). The complex system is embedded as a real one,
//
//	[ Re A  −Im A ] [ Re x ]   [ Re b ]
//	[ Im A   Re A ] [ Im x ] = [ Im b ]
//
// factorized once per worker with gonum's QR and solved row by row, one
// right-hand-side column per partner j. Coefficients of magnitude at or
// below the tolerance are discarded; a pair whose bracket is numerically
// zero has no entry.
//
// A pair whose bracket decomposes onto more than one basis element is a
// degeneracy: the full sparse term vector is kept (Table.Terms), the lowest
// index k is reported as the leading term (Table.Get), and the pair is
// recorded in Table.Degenerate. WithStrict turns recorded degeneracies into
// a returned *DegenerateError alongside the complete table.
//
// Anticommutators of traceless elements carry an identity component that
// lies outside the span of a traceless basis; least squares drops it. No
// trace is subtracted before solving.
//
// Concurrency:
//
//	Rows i are distributed over WithWorkers goroutines (errgroup). Results
//	are merged in (i, j) order, so the table never depends on scheduling.
//
// Complexity:
//
//	Factorization O(n²·s²) per worker; each row O(s·n³) for the brackets and
//	O(n²·s²) for the solve, giving O(s²·n³ + s³·n²) overall.
package structure
