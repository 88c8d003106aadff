// Package ring declares the constraint every coefficient type of a
// poly.Poly must satisfy: a commutative ring with division (total except at
// zero), equality, and distinguished zero/one elements.
package ring

// Elem is implemented by any type usable as a polynomial coefficient.
//
// Zero and One are defined as methods (not free functions) because Go
// generics have no notion of a "static" method callable without a receiver
// value; callers obtain a zero/one value of T by invoking Zero/One on any
// existing T, typically the receiver's own zero value.
//
// Implementations must additionally satisfy one structural constraint that
// can't be expressed in the interface itself: the Go zero value of T (the
// value you get from `var t T`) must equal T.Zero(). poly.Poly relies on
// this to produce a ring-zero coefficient without already holding a T.
type Elem[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Equal(T) bool
	IsZero() bool
	IsOne() bool
	Zero() T
	One() T
}
