// Package poly implements dense univariate polynomials over an arbitrary
// commutative ring with division (see ring.Elem), and the extended
// Euclidean algorithm used to invert elements of a quotient of that ring.
//
// Coefficients are stored in ascending degree: index i holds the
// coefficient of x^i. A polynomial is always trimmed so that, unless it has
// length 1, its last entry is non-zero; the zero polynomial is uniquely
// represented as the length-1 slice [zero].
package poly

import (
	"fmt"
	"strings"

	"github.com/corvid-labs/keyshare/ring"
)

// Poly is a polynomial over T, stored as ascending-degree coefficients.
type Poly[T ring.Elem[T]] struct {
	values []T
}

// New builds a Poly from ascending-degree coefficients, trimming trailing
// zeros and collapsing an all-zero or empty input to the canonical zero
// polynomial [T.Zero()].
func New[T ring.Elem[T]](coeffs []T) Poly[T] {
	var zero T
	end := len(coeffs)
	for end > 0 && coeffs[end-1].IsZero() {
		end--
	}
	if end == 0 {
		return Poly[T]{values: []T{zero}}
	}
	out := make([]T, end)
	copy(out, coeffs[:end])
	return Poly[T]{values: out}
}

// vals returns p's coefficient slice, substituting the canonical
// single-zero representation when p is a bare Go zero value (values == nil).
// This keeps every Poly[T], including ones never passed through New —
// notably a zero-value T embedding a Poly[z2.Z2], as gf256.Elem does —
// behaving identically to New(nil).
func (p Poly[T]) vals() []T {
	if len(p.values) == 0 {
		var zero T
		return []T{zero}
	}
	return p.values
}

// Values returns the polynomial's ascending-degree coefficients. The
// returned slice must not be mutated by the caller.
func (p Poly[T]) Values() []T { return p.vals() }

// Degree returns the polynomial's degree. The zero polynomial has degree 0,
// matching its single-coefficient representation.
func (p Poly[T]) Degree() int { return len(p.vals()) - 1 }

// IsZero reports whether p is the zero polynomial, checked canonically
// against the trimmed representation (a single zero coefficient), not
// merely the last stored entry.
func (p Poly[T]) IsZero() bool {
	v := p.vals()
	return len(v) == 1 && v[0].IsZero()
}

// IsOne reports whether p is the constant polynomial 1.
func (p Poly[T]) IsOne() bool {
	v := p.vals()
	return len(v) == 1 && v[0].IsOne()
}

// Equal reports whether p and q have identical trimmed coefficient
// sequences.
func (p Poly[T]) Equal(q Poly[T]) bool {
	a, b := p.vals(), q.vals()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly[T]) Add(q Poly[T]) Poly[T] {
	higher, lower := p.vals(), q.vals()
	if len(lower) > len(higher) {
		higher, lower = lower, higher
	}
	out := make([]T, len(higher))
	copy(out, higher)
	for i := range lower {
		out[i] = out[i].Add(lower[i])
	}
	return New(out)
}

// Sub returns p - q.
func (p Poly[T]) Sub(q Poly[T]) Poly[T] {
	pv, qv := p.vals(), q.vals()
	n := len(pv)
	if len(qv) > n {
		n = len(qv)
	}
	var zero T
	out := make([]T, n)
	for i := 0; i < n; i++ {
		a, b := zero, zero
		if i < len(pv) {
			a = pv[i]
		}
		if i < len(qv) {
			b = qv[i]
		}
		out[i] = a.Sub(b)
	}
	return New(out)
}

// Mul returns p * q, schoolbook O(|p|*|q|).
func (p Poly[T]) Mul(q Poly[T]) Poly[T] {
	pv, qv := p.vals(), q.vals()
	var zero T
	out := make([]T, len(pv)+len(qv)-1)
	for i := range out {
		out[i] = zero
	}
	for i, a := range pv {
		if a.IsZero() {
			continue
		}
		for j, b := range qv {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return New(out)
}

// Div performs schoolbook long division, returning (quotient, remainder)
// such that p = q*quotient + remainder and deg(remainder) < deg(q).
//
// Div panics if q is the zero polynomial; this is a precondition violation,
// not a recoverable error, per the package's program-error policy. If
// deg(p) < deg(q), it returns (0, p) directly.
func (p Poly[T]) Div(q Poly[T]) (quotient, remainder Poly[T]) {
	if q.IsZero() {
		panic("poly: division by zero polynomial")
	}
	divisor := q.vals()
	divLen := len(divisor)
	pv := p.vals()
	dividend := make([]T, len(pv))
	copy(dividend, pv)

	if len(dividend) < divLen {
		return New([]T{dividend[0].Zero()}), New(dividend)
	}

	var zero T
	quotLen := len(dividend) + 1 - divLen
	quot := make([]T, quotLen)
	for i := range quot {
		quot[i] = zero
	}
	lead := divisor[divLen-1]

	for x := len(dividend) - 1; x >= divLen-1; x-- {
		t := dividend[x].Div(lead)
		quot[x+1-divLen] = t
		for y := 0; y < divLen; y++ {
			dividend[x-y] = dividend[x-y].Sub(t.Mul(divisor[divLen-1-y]))
		}
	}

	return New(quot), New(dividend)
}

// Modulus returns p mod q, i.e. the remainder of Div.
func (p Poly[T]) Modulus(q Poly[T]) Poly[T] {
	_, r := p.Div(q)
	return r
}

// Evaluate computes p(x) via Horner's method.
func (p Poly[T]) Evaluate(x T) T {
	v := p.vals()
	n := len(v)
	out := v[n-1]
	for i := n - 2; i >= 0; i-- {
		out = out.Mul(x).Add(v[i])
	}
	return out
}

// LeadingCoeff returns the coefficient of p's highest-degree term.
func (p Poly[T]) LeadingCoeff() T {
	v := p.vals()
	return v[len(v)-1]
}

// CoeffMul multiplies every coefficient of p by k, a scalar in T.
func (p Poly[T]) CoeffMul(k T) Poly[T] {
	v := p.vals()
	out := make([]T, len(v))
	for i, c := range v {
		out[i] = c.Mul(k)
	}
	return New(out)
}

// CoeffDiv divides every coefficient of p by k, a scalar in T.
// Panics if k is zero.
func (p Poly[T]) CoeffDiv(k T) Poly[T] {
	v := p.vals()
	out := make([]T, len(v))
	for i, c := range v {
		out[i] = c.Div(k)
	}
	return New(out)
}

// Normalize divides every coefficient by the leading (highest-degree)
// coefficient, producing a monic polynomial. Panics if p is zero.
func (p Poly[T]) Normalize() Poly[T] {
	return p.CoeffDiv(p.LeadingCoeff())
}

// InvMod returns the multiplicative inverse of p modulo m, computed via the
// extended Euclidean algorithm (see Euclidean). Preconditions: p is
// non-zero and coprime to m; violating either is a program error.
func (p Poly[T]) InvMod(m Poly[T]) Poly[T] {
	if p.IsZero() {
		panic("poly: InvMod of zero polynomial")
	}
	s, _, gcd := Euclidean(p, m)
	if !gcd.IsOne() {
		panic("poly: InvMod of non-coprime polynomial")
	}
	return s.Modulus(m)
}

// String renders p in descending-degree "cx^n + ... + c" form: the x^1 term
// is printed as "cx", the x^0 term as bare "c", and zero coefficients are
// omitted unless p is the zero polynomial.
func (p Poly[T]) String() string {
	type term struct {
		val T
		deg int
	}
	pv := p.vals()
	var terms []term
	for i, v := range pv {
		if !v.IsZero() {
			terms = append(terms, term{v, i})
		}
	}
	if len(terms) == 0 {
		return fmt.Sprintf("%v", pv[0])
	}

	var b strings.Builder
	for i := len(terms) - 1; i >= 1; i-- {
		writeTerm(&b, terms[i].val, terms[i].deg)
		b.WriteString(" + ")
	}
	writeTerm(&b, terms[0].val, terms[0].deg)
	return b.String()
}

func writeTerm[T ring.Elem[T]](b *strings.Builder, v T, deg int) {
	switch deg {
	case 0:
		fmt.Fprintf(b, "%v", v)
	case 1:
		fmt.Fprintf(b, "%vx", v)
	default:
		fmt.Fprintf(b, "%vx^%d", v, deg)
	}
}

// GoString renders every coefficient from highest to lowest degree,
// including zeros, as "cx^n + ... + c1x^1 + c0x^0", useful when a test needs
// to see the full coefficient vector rather than its trimmed display form.
func (p Poly[T]) GoString() string {
	v := p.vals()
	var b strings.Builder
	for i := len(v) - 1; i >= 1; i-- {
		fmt.Fprintf(&b, "%vx^%d + ", v[i], i)
	}
	fmt.Fprintf(&b, "%vx^0", v[0])
	return b.String()
}
