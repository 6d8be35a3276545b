// Package bracket evaluates Lie brackets of algebra elements given in
// coordinates over a basis, using precomputed coefficient tables instead of
// matrix products.
//
// For coordinate vectors la, lb over a basis of size s and a table c:
//
//	Cross(la, lb, c)_k              = Σ_{(i,j)} la_i · lb_j · c(i,j,k)
//	Commutator(la, lb, f, basis)    = Σ_k Cross(la, lb, f)_k · T_k
//
// With f from structure.StructureConstants these reproduce [A, B]; with d
// from structure.DCoefficients (Dot, Anticommutator) they reproduce the
// in-span part of {A, B}. Every term of a degenerate entry contributes.
// Contributions of magnitude at or below the tolerance are skipped.
package bracket
