// Package randsrc is the cryptographically secure random byte oracle used
// by xorshare and shamirshare to draw coefficients and padding shares.
package randsrc

import (
	"crypto/rand"

	"github.com/corvid-labs/keyshare/keyerr"
)

// Fill fills buf with cryptographically secure random bytes, wrapping any
// failure of the underlying entropy source as keyerr.RandomFailure.
func Fill(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return keyerr.Wrap(keyerr.RandomFailure, err, "randsrc: reading entropy")
	}
	return nil
}

// Bytes allocates and fills an n-byte buffer.
func Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := Fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
