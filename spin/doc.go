// Package spin builds the ladder operators of a single spin quantum number
// and the su(2) / sl(2) triplets derived from them.
//
// What is a spin-j representation?
//
//	For a half-integer j ≥ 0 the representation has n = 2j+1 levels
//	m = j, j−1, …, −j. Three real operators generate it:
//	  • Z      : diag(j, j−1, …, −j)
//	  • Raise  : super-diagonal sqrt((j−m)(j+m+1)), m = j−1 … −j
//	  • Lower  : sub-diagonal   sqrt((j+m)(j−m+1)), m = j … −j+1
//	and X = (Raise+Lower)/2, Y = (Raise−Lower)/2 (real stand-in for S_y).
//
// Usage:
//
//	t, err := spin.SU2(1)   // complex, Hermitian {Z, X, Y} with [X,Y] = iZ
//	r, err := spin.SL2(0.5) // real {Z, Raise, Lower}
//
// The real operators are gonum *mat.Dense values; SU2 promotes them to the
// module's complex matrix.Dense. A spin that is negative, non-finite or not
// within tolerance of a multiple of one half is rejected with
// matrix.ErrInvalidParameter rather than truncated.
package spin
