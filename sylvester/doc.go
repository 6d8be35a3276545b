// Package sylvester generates the clock-and-shift (Sylvester,
// Heisenberg–Weyl) basis of su(d) or u(d).
//
// What is it?
//
//	With ω = e^{2πi/d}:
//	  • Shift X: |k⟩ → |k+1 mod d⟩ (cyclic permutation)
//	  • Clock Z: diag(1, ω, ω², …, ω^{d−1})
//	The clock is the discrete Fourier transform of the shift, Z = F·X·F†,
//	and is built exactly that way through gonum's dsp/fourier.
//
//	The basis elements are Z^a·X^b for a, b ∈ [0, d), (a,b) ≠ (0,0):
//	d²−1 unitary matrices spanning the same complex space as the
//	generalized Gell-Mann basis. WithIdentity keeps (0,0) for u(d).
//
// Closure:
//
//	X^b·Z^c = ω^{−bc}·Z^c·X^b, hence
//	[Z^a X^b, Z^c X^e] = (ω^{−bc} − ω^{−ae})·Z^{a+c} X^{b+e},
//	so every commutator lands on a single basis element.
package sylvester
