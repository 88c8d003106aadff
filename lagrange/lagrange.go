// Package lagrange implements Lagrange interpolation over an arbitrary
// field satisfying ring.Elem.
package lagrange

import (
	"github.com/corvid-labs/keyshare/keyerr"
	"github.com/corvid-labs/keyshare/poly"
	"github.com/corvid-labs/keyshare/ring"
)

// Interpolate returns the unique polynomial P of degree < len(xs) with
// P(xs[i]) = ys[i] for every i, computed as the sum over j of
// ys[j] * L_j(x), where L_j(x) = product over i != j of (x - xs[i]) /
// (xs[j] - xs[i]).
//
// Interpolate fails with keyerr.BadArgument if len(xs) != len(ys).
func Interpolate[T ring.Elem[T]](xs, ys []T) (poly.Poly[T], error) {
	if len(xs) != len(ys) {
		var zero poly.Poly[T]
		return zero, keyerr.New(keyerr.BadArgument, "lagrange: xs and ys must have equal length")
	}

	var zeroT T
	result := poly.New([]T{zeroT})

	for j := range xs {
		basis := poly.New([]T{zeroT.One()})
		for i := range xs {
			if i == j {
				continue
			}
			// (x - xs[i]) / (xs[j] - xs[i])
			numerator := poly.New([]T{zeroT.Zero().Sub(xs[i]), zeroT.One()})
			denom := xs[j].Sub(xs[i])
			basis = basis.Mul(numerator.CoeffDiv(denom))
		}
		result = result.Add(basis.CoeffMul(ys[j]))
	}

	return result, nil
}
