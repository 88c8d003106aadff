// Package gf256 implements GF(2^256), the finite field of order 2^256,
// realized as poly.Poly[z2.Z2] modulo a fixed degree-256 irreducible
// polynomial IRRED = x^256 + x^241 + x^178 + x^121 + 1.
package gf256

import (
	"sync"

	"github.com/corvid-labs/keyshare/poly"
	"github.com/corvid-labs/keyshare/z2"
)

// irredBytes is IRRED's canonical byte encoding: 8 bits per byte,
// little-endian within each byte, bytes in ascending order. Bit i of byte j
// holds the coefficient of degree 8j+i.
var irredBytes = []byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00,
	0x01,
}

var (
	irredOnce sync.Once
	irredPoly poly.Poly[z2.Z2]
)

func irred() poly.Poly[z2.Z2] {
	irredOnce.Do(func() {
		irredPoly = polyFromBytes(irredBytes)
	})
	return irredPoly
}

// Elem is an element of GF(2^256): a degree-<256 polynomial over GF(2),
// reduced modulo IRRED.
type Elem struct {
	p poly.Poly[z2.Z2]
}

// New reduces p modulo IRRED, establishing the degree-<256 invariant.
func New(p poly.Poly[z2.Z2]) Elem {
	return Elem{p: p.Modulus(irred())}
}

// Add returns a + b (XOR of the underlying GF(2) polynomials, already
// reduced since addition cannot raise the degree past either operand's).
func (a Elem) Add(b Elem) Elem { return New(a.p.Add(b.p)) }

// Sub is identical to Add in characteristic 2.
func (a Elem) Sub(b Elem) Elem { return New(a.p.Sub(b.p)) }

// Mul returns a * b mod IRRED.
func (a Elem) Mul(b Elem) Elem { return New(a.p.Mul(b.p)) }

// Div returns a / b, computed as a * inverse(b) mod IRRED. Panics if b is
// zero.
func (a Elem) Div(b Elem) Elem {
	if b.IsZero() {
		panic("gf256: division by zero")
	}
	inv := b.p.InvMod(irred())
	return New(a.p.Mul(inv))
}

// Inverse returns the multiplicative inverse of a. Panics if a is zero.
func (a Elem) Inverse() Elem {
	if a.IsZero() {
		panic("gf256: inverse of zero")
	}
	return New(a.p.InvMod(irred()))
}

// Equal reports whether a and b denote the same field element.
func (a Elem) Equal(b Elem) bool { return a.p.Equal(b.p) }

// IsZero reports whether a is the additive identity, checked canonically
// (the trimmed polynomial is exactly [z2.Zero]), not merely by inspecting
// its last stored coefficient.
func (a Elem) IsZero() bool { return a.p.IsZero() }

// IsOne reports whether a is the multiplicative identity.
func (a Elem) IsOne() bool { return a.p.IsOne() }

// Zero returns the additive identity. The receiver's value is ignored.
func (a Elem) Zero() Elem { return Elem{p: poly.New([]z2.Z2{z2.Zero})} }

// One returns the multiplicative identity. The receiver's value is ignored.
func (a Elem) One() Elem { return Elem{p: poly.New([]z2.Z2{z2.One})} }

// String renders the underlying polynomial.
func (a Elem) String() string { return a.p.String() }

// ToBytes serializes a's coefficients with bit i of byte j holding the
// coefficient of degree 8j+i. The returned length is the minimum number of
// bytes needed to hold deg(a)+1 bits; the zero element encodes as an empty
// slice.
func (a Elem) ToBytes() []byte {
	return polyToBytes(a.p)
}

// To32Bytes is ToBytes, zero-padded up to exactly 32 bytes. Since a always
// has degree < 256, ToBytes never exceeds 32 bytes and this never
// truncates.
func (a Elem) To32Bytes() []byte {
	b := a.ToBytes()
	out := make([]byte, 32)
	copy(out, b)
	return out
}

// FromBytes interprets buf as a bit string (little-endian within each
// byte, bytes ascending) and reduces it modulo IRRED. Any bits of degree
// >= 256 are eliminated by that reduction, so FromBytes accepts a buffer of
// any length.
func FromBytes(buf []byte) Elem {
	return New(polyFromBytes(buf))
}

func polyFromBytes(buf []byte) poly.Poly[z2.Z2] {
	coeffs := make([]z2.Z2, 0, 8*len(buf))
	for _, b := range buf {
		for i := 0; i < 8; i++ {
			coeffs = append(coeffs, z2.FromBit(b>>uint(i)))
		}
	}
	return poly.New(coeffs)
}

func polyToBytes(p poly.Poly[z2.Z2]) []byte {
	values := p.Values()
	if p.IsZero() {
		return []byte{}
	}
	n := len(values)
	length := (n + 7) / 8
	out := make([]byte, length)
	for deg, c := range values {
		if c.IsZero() {
			continue
		}
		out[deg/8] |= 1 << uint(deg%8)
	}
	return out
}
