// Package z2 implements GF(2), the two-element field {0, 1}.
//
// Addition and subtraction are XOR, multiplication is AND, and division is
// only defined for a divisor of 1. Division by zero is a program error: it
// indicates a bug in the caller, not a recoverable condition, and panics.
package z2

import "fmt"

// Z2 is an element of GF(2).
type Z2 uint8

const (
	Zero Z2 = 0
	One  Z2 = 1
)

// Add returns a XOR b.
func (a Z2) Add(b Z2) Z2 { return a ^ b }

// Sub is identical to Add in characteristic 2.
func (a Z2) Sub(b Z2) Z2 { return a ^ b }

// Mul returns a AND b.
func (a Z2) Mul(b Z2) Z2 { return a & b }

// Div returns a / b. Panics if b is Zero.
func (a Z2) Div(b Z2) Z2 {
	if b == Zero {
		panic("z2: division by zero")
	}
	return a
}

// Equal reports whether a and b are the same element.
func (a Z2) Equal(b Z2) bool { return a == b }

// IsZero reports whether a is the additive identity.
func (a Z2) IsZero() bool { return a == Zero }

// IsOne reports whether a is the multiplicative identity.
func (a Z2) IsOne() bool { return a == One }

// Zero returns the additive identity. The receiver's value is ignored.
func (a Z2) Zero() Z2 { return Zero }

// One returns the multiplicative identity. The receiver's value is ignored.
func (a Z2) One() Z2 { return One }

// String renders the element as "0" or "1".
func (a Z2) String() string {
	if a == Zero {
		return "0"
	}
	return "1"
}

// FromBit constructs a Z2 from the low bit of b (e.g. a bit shifted down out
// of a byte buffer); all higher bits are ignored, so FromBit(0xfe) is Zero.
func FromBit(b byte) Z2 {
	if b&1 == 1 {
		return One
	}
	return Zero
}

var _ fmt.Stringer = Zero
