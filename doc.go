// Package lielath is your in-memory workbench for matrix Lie algebras:
// generate a basis of su(d), compute its structure constants and
// d-coefficients, and bracket elements straight from their coordinates.
//
// 🚀 What is lielath?
//
//	A small, deterministic numeric library that brings together:
//		• Spin primitives: J_z, J+, J−, the su(2) and sl(2) triplets
//		• Generalized Gell-Mann: anti-Hermitian basis of su(d)
//		• Sylvester clock-shift: unitary Z^a·X^b basis (Weyl–Heisenberg)
//		• Spherical tensors: Hermitian basis coupled rank by rank
//		• Structure constants & d-coefficients: least squares, worker pool
//		• Bracket algebra: [A,B] and {A,B} from coefficient tables
//
// ✨ Why choose lielath?
//
//   - Explicit errors – sentinel values matched with errors.Is
//   - Honest numerics – degeneracies are recorded, not hidden
//   - Deterministic – the concurrent solve merges rows in order
//   - Built on gonum – QR least squares and cblas128 products
//
// Under the hood, everything is organized into focused subpackages:
//
//	matrix/     : complex Dense type, kernels, validators, tolerance options
//	spin/       : spin-j ladder operators and triplets
//	gellmann/   : generalized Gell-Mann basis
//	sylvester/  : clock, shift and DFT matrices, clock-shift basis
//	spherical/  : spherical tensor operators and their Hermitian basis
//	structure/  : coefficient tables, solvers, Decompose
//	bracket/    : table-driven commutator, anticommutator, Cross, Dot
//	algebra/    : basis + both tables bundled as one value
//
// Quick example:
//
//	su3, _ := algebra.NewSU(3)
//	fmt.Println(su3)                              // su(3); basis size: 8
//	fmt.Println(su3.StructureConstants().Len())   // 50
//
// The lielath command (cmd/lielath) prints any built-in basis and its
// tables from the terminal:
//
//	go install github.com/katalvlaran/lielath/cmd/lielath@latest
//	lielath constants sylvester 3 --anti
package lielath
