// Package envelope ties together a random symmetric key, an AEAD cipher and
// a secret sharer into an end-to-end primitive: a plaintext is sealed under
// a fresh key, and the key itself is split into shares so that no individual
// share (or ciphertext alone) discloses the plaintext.
package envelope

import (
	"github.com/corvid-labs/keyshare/aead"
	"github.com/corvid-labs/keyshare/internal/wipe"
	"github.com/corvid-labs/keyshare/keyerr"
	"github.com/corvid-labs/keyshare/randsrc"
	"github.com/corvid-labs/keyshare/shamirshare"
	"github.com/corvid-labs/keyshare/share"
	"github.com/corvid-labs/keyshare/xorshare"
)

// Kind selects which secret-sharing scheme protects the envelope's key.
type Kind int

const (
	// XOR splits the key with xorshare: every share is required to recover
	// it.
	XOR Kind = iota
	// Shamir splits the key with shamirshare: any Threshold-of-ShareCount
	// shares recover it.
	Shamir
)

// Sealed is the output of Encode: a nonce and ciphertext produced by the
// AEAD cipher, plus the shares protecting the key that sealed them.
type Sealed struct {
	Nonce      []byte
	Ciphertext []byte
	Shares     []share.Share
}

// Encode seals plaintext under a freshly generated random key, then splits
// that key according to kind. For kind == Shamir, threshold is the
// reconstruction threshold; for kind == XOR it is ignored and every one of
// shareCount shares is required.
//
// Encode fails with keyerr.RandomFailure if key or nonce generation fails,
// or with keyerr.BadArgument if the underlying sharer rejects shareCount or
// threshold.
func Encode(plaintext []byte, shareCount, threshold int, kind Kind) (Sealed, error) {
	key, err := randsrc.Bytes(aead.KeySize)
	if err != nil {
		return Sealed{}, err
	}
	defer wipe.Bytes(key)

	nonce, err := randsrc.Bytes(aead.NonceSize)
	if err != nil {
		return Sealed{}, err
	}

	cipher, err := aead.New(key)
	if err != nil {
		return Sealed{}, err
	}
	ciphertext := cipher.Seal(nonce, plaintext)

	shares, err := splitKey(key, shareCount, threshold, kind)
	if err != nil {
		return Sealed{}, err
	}

	return Sealed{Nonce: nonce, Ciphertext: ciphertext, Shares: shares}, nil
}

// Decode reassembles the key from shares and uses it to open ciphertext
// under nonce. It fails with keyerr.AuthFailure if the ciphertext does not
// authenticate under the reassembled key — including when shares is an
// under-threshold Shamir subset, which silently reconstructs the wrong key.
func Decode(nonce, ciphertext []byte, shares []share.Share, kind Kind) ([]byte, error) {
	key, err := joinKey(shares, kind)
	if err != nil {
		return nil, err
	}
	defer wipe.Bytes(key)

	cipher, err := aead.New(key)
	if err != nil {
		return nil, err
	}
	return cipher.Open(nonce, ciphertext)
}

func splitKey(key []byte, shareCount, threshold int, kind Kind) ([]share.Share, error) {
	switch kind {
	case XOR:
		return xorshare.New(shareCount).Encode(key)
	case Shamir:
		return shamirshare.New(shareCount, threshold).Encode(key)
	default:
		return nil, keyerr.New(keyerr.BadArgument, "envelope: unknown sharer kind")
	}
}

func joinKey(shares []share.Share, kind Kind) ([]byte, error) {
	switch kind {
	case XOR:
		return xorshare.Decode(shares)
	case Shamir:
		key, err := shamirshare.Decode(shares)
		if err != nil {
			return nil, err
		}
		return key[:aead.KeySize], nil
	default:
		return nil, keyerr.New(keyerr.BadArgument, "envelope: unknown sharer kind")
	}
}
