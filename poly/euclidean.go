package poly

import "github.com/corvid-labs/keyshare/ring"

// Euclidean runs the extended Euclidean algorithm on a, b and returns (s, t,
// gcd) such that s*a + t*b = gcd, with gcd normalized to be monic (its
// leading coefficient is 1), and s, t scaled by the same factor so the
// identity still holds.
//
// The gcd's monic-ifying scalar is its highest-degree coefficient, per
// LeadingCoeff — not the constant term.
func Euclidean[T ring.Elem[T]](a, b Poly[T]) (s, t, gcd Poly[T]) {
	var zero T
	one := zero.One()

	remOld, remNew := a, b
	sOld, sNew := New([]T{one}), New([]T{zero})
	tOld, tNew := New([]T{zero}), New([]T{one})

	for !remNew.IsZero() {
		quotient, remainder := remOld.Div(remNew)
		remOld, remNew = remNew, remainder

		sOld, sNew = sNew, sOld.Sub(quotient.Mul(sNew))
		tOld, tNew = tNew, tOld.Sub(quotient.Mul(tNew))
	}

	lc := remOld.LeadingCoeff()
	s = sOld.CoeffDiv(lc)
	t = tOld.CoeffDiv(lc)
	gcd = remOld.Normalize()

	return s, t, gcd
}
