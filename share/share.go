// Package share defines the wire-level Share type produced by a sharer
// (xorshare.Sharer or shamirshare.Sharer) and consumed by the matching
// reconstruction call.
package share

import "github.com/corvid-labs/keyshare/gf256"

// Share is implemented by Xor and Shamir. A Share exists only between an
// Envelope's Encode and Decode; it is never held alongside the secret it
// helps reconstruct.
type Share interface {
	isShare()
}

// Xor is an n-of-n additive share: a byte string of the secret's length.
type Xor struct {
	Bytes []byte
}

func (Xor) isShare() {}

// Shamir is a (t, n) threshold share: an evaluation point and the
// polynomial's value there, both elements of GF(2^256).
type Shamir struct {
	X gf256.Elem
	Y gf256.Elem
}

func (Shamir) isShare() {}

// AllXor reports whether every share in shares is an Xor share, returning
// the unwrapped byte slices in the same order. The second return is false
// if shares is empty or contains any non-Xor share.
func AllXor(shares []Share) ([][]byte, bool) {
	if len(shares) == 0 {
		return nil, false
	}
	out := make([][]byte, len(shares))
	for i, s := range shares {
		x, ok := s.(Xor)
		if !ok {
			return nil, false
		}
		out[i] = x.Bytes
	}
	return out, true
}

// AllShamir reports whether every share in shares is a Shamir share,
// returning parallel X/Y slices in the same order. The second return is
// false if shares is empty or contains any non-Shamir share.
func AllShamir(shares []Share) (xs, ys []gf256.Elem, ok bool) {
	if len(shares) == 0 {
		return nil, nil, false
	}
	xs = make([]gf256.Elem, len(shares))
	ys = make([]gf256.Elem, len(shares))
	for i, s := range shares {
		sh, isShamir := s.(Shamir)
		if !isShamir {
			return nil, nil, false
		}
		xs[i] = sh.X
		ys[i] = sh.Y
	}
	return xs, ys, true
}

// DistinctXs reports whether every element of xs is pairwise distinct,
// required before Shamir reconstruction can proceed (duplicate evaluation
// points make Lagrange interpolation undefined).
func DistinctXs(xs []gf256.Elem) bool {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equal(xs[j]) {
				return false
			}
		}
	}
	return true
}

// EqualLengths reports whether every byte slice in bufs has the same
// length, required before XOR reconstruction.
func EqualLengths(bufs [][]byte) bool {
	if len(bufs) == 0 {
		return true
	}
	n := len(bufs[0])
	for _, b := range bufs[1:] {
		if len(b) != n {
			return false
		}
	}
	return true
}
