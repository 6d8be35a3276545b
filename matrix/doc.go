// Package matrix provides the dense complex matrix used to represent Lie
// algebra generators, together with the small set of kernels the generators,
// solvers and bracket operators are built from.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked At/Set.
//   - Kernels: Add, Sub, Scale, Mul, ConjTranspose, Commutator, Anticommutator.
//   - Predicates: EqualApprox, IsHermitian, IsAntiHermitian.
//   - Validators shared by every package of the module (ValidateBasis, ...).
//   - Interop with gonum: FromReal, FromCMatrix and Dense.CDense.
//
// Numeric policy:
//
//	Floating-point equality is never exact. Every comparison goes through a
//	tolerance, DefaultTolerance (1e-8) unless overridden with WithTolerance.
//
// Complexity:
//
//	At/Set are O(1); Add/Sub/Scale are O(r*c); Mul is O(r*n*c) via gonum's
//	cblas128 GEMM.
package matrix
