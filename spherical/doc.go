// Package spherical builds a Hermitian basis of n×n operators, n = 2j+1,
// from spherical tensor operators T(r,u) of a spin-j representation.
//
// Construction:
//
//	Rank 1 is the spin triplet:
//	  T(1,0) = Z,  T(1,+1) = −(X+Y) = −J+,  T(1,−1) = X−Y = J−
//	Rank r is coupled from rank r−1 and rank 1:
//	  T(r,u) = Σ_{i=u−1}^{u+1}, |i|<r  CG(r−1, i, u−i) · T(r−1,i) · T(1,u−i)
//	with closed-form Clebsch–Gordan weights CG for the three projections
//	{+1, 0, −1} of the rank-1 factor. Ranks are built iteratively, each from
//	the previous rank's slice, so stack depth does not grow with j.
//
// Hermitian pass:
//
//	For each rank, u = 0 gives T(r,0); every u > 0 pairs T(r,u) with its
//	mirror (−1)^u·T(r,−u):
//	  (T(r,u) + (−1)^u T(r,−u)) / 2      (real symmetric)
//	  i·(T(r,u) − (−1)^u T(r,−u)) / 2    (imaginary antisymmetric)
//	giving 2r+1 Hermitian operators per rank and n²−1 in total. T(r,0)
//	is diagonal and, for r ≥ 2, has a nonzero trace, so the basis is not
//	confined to su(n).
//
// Complexity:
//
//	O(n² · n³) time for the raw basis (three n×n products per operator).
package spherical
