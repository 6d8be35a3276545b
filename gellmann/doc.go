// Package gellmann generates the generalized Gell-Mann basis of su(d).
//
// What is it?
//
//	The d²−1 generalized Gell-Mann matrices generalize the Pauli (d=2) and
//	Gell-Mann (d=3) matrices. For 1-based indices j, k ≤ d:
//	  • j > k: symmetric,      1 at (j,k) and (k,j)
//	  • j < k: antisymmetric, −i at (j,k), +i at (k,j)
//	  • j = k < d: diagonal, 1 in the first j slots, −j in slot j+1,
//	    scaled by sqrt(2/(j(j+1)))
//
// Convention:
//
//	Basis multiplies every element by i, so the returned matrices are
//	anti-Hermitian. Compare against Hermitian bases (spherical, spin)
//	with that factor in mind.
//
// Usage:
//
//	b, err := gellmann.Basis(3) // 8 anti-Hermitian 3×3 matrices
package gellmann
