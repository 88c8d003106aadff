// Package rat provides an exact-rational ring.Elem, used only by poly,
// euclidean and lagrange tests where floating point would silently corrupt
// the Bézout identity and interpolation fixtures those tests check.
package rat

import (
	"fmt"
	"math/big"
)

// Rat is an exact rational number, backed by math/big.Rat.
type Rat struct {
	v *big.Rat
}

// New returns the rational n/d.
func New(n, d int64) Rat {
	return Rat{v: big.NewRat(n, d)}
}

// FromInt returns the rational n/1.
func FromInt(n int64) Rat {
	return Rat{v: big.NewRat(n, 1)}
}

func (a Rat) val() *big.Rat {
	if a.v == nil {
		return big.NewRat(0, 1)
	}
	return a.v
}

// Add returns a + b.
func (a Rat) Add(b Rat) Rat {
	return Rat{v: new(big.Rat).Add(a.val(), b.val())}
}

// Sub returns a - b.
func (a Rat) Sub(b Rat) Rat {
	return Rat{v: new(big.Rat).Sub(a.val(), b.val())}
}

// Mul returns a * b.
func (a Rat) Mul(b Rat) Rat {
	return Rat{v: new(big.Rat).Mul(a.val(), b.val())}
}

// Div returns a / b. Panics if b is zero.
func (a Rat) Div(b Rat) Rat {
	if b.IsZero() {
		panic("rat: division by zero")
	}
	return Rat{v: new(big.Rat).Quo(a.val(), b.val())}
}

// Equal reports whether a and b denote the same rational number.
func (a Rat) Equal(b Rat) bool { return a.val().Cmp(b.val()) == 0 }

// IsZero reports whether a is 0.
func (a Rat) IsZero() bool { return a.val().Sign() == 0 }

// IsOne reports whether a is 1.
func (a Rat) IsOne() bool { return a.val().Cmp(big.NewRat(1, 1)) == 0 }

// Zero returns the additive identity. The receiver's value is ignored.
func (a Rat) Zero() Rat { return Rat{v: big.NewRat(0, 1)} }

// One returns the multiplicative identity. The receiver's value is ignored.
func (a Rat) One() Rat { return Rat{v: big.NewRat(1, 1)} }

// String renders the rational as an integer when it has denominator 1, and
// as "num/denom" otherwise.
func (a Rat) String() string {
	v := a.val()
	if v.IsInt() {
		return v.Num().String()
	}
	return fmt.Sprintf("%s/%s", v.Num().String(), v.Denom().String())
}
