// Package xorshare implements the n-of-n additive sharer: all n shares are
// required to reconstruct the secret; any n-1 reveal nothing about it.
package xorshare

import (
	"crypto/rand"
	"math/big"

	"github.com/corvid-labs/keyshare/keyerr"
	"github.com/corvid-labs/keyshare/randsrc"
	"github.com/corvid-labs/keyshare/share"
)

// Sharer is an n-of-n additive sharer over byte strings.
type Sharer struct {
	ShareCount int
}

// New returns a Sharer configured for shareCount shares.
func New(shareCount int) Sharer {
	return Sharer{ShareCount: shareCount}
}

// Encode draws shareCount-1 independent uniformly random byte strings of
// len(secret) bytes, and sets the final share to their XOR-complement so
// that XORing all shareCount shares together recovers secret. The returned
// slice is shuffled, so the position of the "derived" share carries no
// meaning.
//
// Encode fails with keyerr.BadArgument if ShareCount < 1.
func (s Sharer) Encode(secret []byte) ([]share.Share, error) {
	if s.ShareCount < 1 {
		return nil, keyerr.New(keyerr.BadArgument, "xorshare: share count must be >= 1")
	}

	acc := make([]byte, len(secret))
	copy(acc, secret)

	shares := make([]share.Share, s.ShareCount)
	for i := 0; i < s.ShareCount-1; i++ {
		buf, err := randsrc.Bytes(len(secret))
		if err != nil {
			return nil, err
		}
		for j := range acc {
			acc[j] ^= buf[j]
		}
		shares[i] = share.Xor{Bytes: buf}
	}
	shares[s.ShareCount-1] = share.Xor{Bytes: acc}

	// Fisher-Yates shuffle so the derived share's position is random.
	for i := len(shares) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return nil, keyerr.Wrap(keyerr.RandomFailure, err, "xorshare: shuffling shares")
		}
		k := int(j.Int64())
		shares[i], shares[k] = shares[k], shares[i]
	}

	return shares, nil
}

// Decode XORs every share together to recover the secret. It fails with
// keyerr.BadArgument if shares is empty, contains a non-XOR share, or the
// shares have unequal lengths.
func Decode(shares []share.Share) ([]byte, error) {
	bufs, ok := share.AllXor(shares)
	if !ok {
		return nil, keyerr.New(keyerr.BadArgument, "xorshare: decode requires one or more XOR shares")
	}
	if !share.EqualLengths(bufs) {
		return nil, keyerr.New(keyerr.BadArgument, "xorshare: all shares must have equal length")
	}

	out := make([]byte, len(bufs[0]))
	copy(out, bufs[0])
	for _, b := range bufs[1:] {
		for j := range out {
			out[j] ^= b[j]
		}
	}
	return out, nil
}
