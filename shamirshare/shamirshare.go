// Package shamirshare implements a (t, n) Shamir threshold sharer over
// GF(2^256): any t of the n shares it produces suffice to reconstruct the
// secret; fewer than t reveal nothing about it.
package shamirshare

import (
	"encoding/binary"

	"github.com/corvid-labs/keyshare/gf256"
	"github.com/corvid-labs/keyshare/keyerr"
	"github.com/corvid-labs/keyshare/lagrange"
	"github.com/corvid-labs/keyshare/poly"
	"github.com/corvid-labs/keyshare/randsrc"
	"github.com/corvid-labs/keyshare/share"
)

// maxSecretLen is the largest secret Encode accepts: a GF(2^256) element
// holds at most 32 bytes.
const maxSecretLen = 32

// Sharer is a (t, n) Shamir threshold sharer.
type Sharer struct {
	ShareCount int
	Threshold  int
}

// New returns a Sharer configured for shareCount shares with the given
// threshold. It does not itself validate 1 <= threshold <= shareCount;
// Encode does, so that a Sharer value can be constructed freely and
// validated only where it's used.
func New(shareCount, threshold int) Sharer {
	return Sharer{ShareCount: shareCount, Threshold: threshold}
}

// shareIndex lifts a 1-based share index into GF(2^256) via a portable
// 8-byte little-endian encoding, so the same shares are produced regardless
// of host word size.
func shareIndex(i int) gf256.Elem {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(i))
	return gf256.FromBytes(buf[:])
}

// Encode splits secret into s.ShareCount Shamir shares such that any
// s.Threshold of them reconstruct it.
//
// Encode fails with keyerr.BadArgument if len(secret) > 32, or if the
// threshold is not in [1, ShareCount].
func (s Sharer) Encode(secret []byte) ([]share.Share, error) {
	if len(secret) > maxSecretLen {
		return nil, keyerr.New(keyerr.BadArgument, "shamirshare: secret must be at most 32 bytes")
	}
	if s.Threshold < 1 || s.Threshold > s.ShareCount {
		return nil, keyerr.New(keyerr.BadArgument, "shamirshare: threshold must be in [1, share count]")
	}

	secretElem := gf256.FromBytes(secret)
	coeffs := make([]gf256.Elem, s.Threshold)
	coeffs[0] = secretElem
	for i := 1; i < s.Threshold; i++ {
		buf, err := randsrc.Bytes(maxSecretLen)
		if err != nil {
			return nil, err
		}
		coeffs[i] = gf256.FromBytes(buf)
	}
	q := poly.New(coeffs)

	shares := make([]share.Share, s.ShareCount)
	for i := 1; i <= s.ShareCount; i++ {
		x := shareIndex(i)
		shares[i-1] = share.Shamir{X: x, Y: q.Evaluate(x)}
	}

	return shares, nil
}

// Decode reconstructs the secret from any subset of shares produced by
// Encode, via Lagrange interpolation followed by evaluation at 0. With
// fewer than the original threshold, the result is an unrelated value, not
// an error: Shamir's scheme offers no way to distinguish an
// under-threshold reconstruction from a valid one short of external
// verification, which this package does not attempt.
//
// Decode fails with keyerr.BadArgument if shares is empty, contains a
// non-Shamir share, or contains two shares with the same evaluation point.
func Decode(shares []share.Share) ([]byte, error) {
	xs, ys, ok := share.AllShamir(shares)
	if !ok {
		return nil, keyerr.New(keyerr.BadArgument, "shamirshare: decode requires one or more Shamir shares")
	}
	if !share.DistinctXs(xs) {
		return nil, keyerr.New(keyerr.BadArgument, "shamirshare: share evaluation points must be distinct")
	}

	r, err := lagrange.Interpolate(xs, ys)
	if err != nil {
		return nil, keyerr.Wrap(keyerr.BadArgument, err, "shamirshare: interpolation failed")
	}

	var zero gf256.Elem
	return r.Evaluate(zero).To32Bytes(), nil
}
