// Package algebra bundles a matrix Lie algebra basis with its structure
// constants and d-coefficients, so elements can move between matrix form
// and coordinates and be bracketed without recomputing tables.
//
// Constructors cover the built-in bases:
//
//	NewSU(d)          generalized Gell-Mann, anti-Hermitian, su(d)
//	NewSylvester(d)   clock-shift Z^a·X^b, su(d) (u(d) with the identity)
//	NewSpherical(j)   Hermitian basis of n×n operators from spin-j tensors
//
// Degeneracies found while building the tables are kept on the tables and
// reported through Algebra.Degenerate; they never fail construction.
package algebra
