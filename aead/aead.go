// Package aead wraps a symmetric authenticated encryption cipher behind a
// narrow interface so that envelope can be built and tested independently of
// which AEAD construction actually backs it.
package aead

import (
	"github.com/corvid-labs/keyshare/keyerr"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the length in bytes of a ChaCha20-Poly1305 key.
const KeySize = chacha20poly1305.KeySize

// NonceSize is the length in bytes of a ChaCha20-Poly1305 nonce.
const NonceSize = chacha20poly1305.NonceSize

// Cipher seals and opens authenticated ciphertexts under a fixed key.
type Cipher interface {
	// Seal encrypts and authenticates plaintext under nonce, appending the
	// authentication tag to the returned ciphertext.
	Seal(nonce, plaintext []byte) []byte

	// Open authenticates and decrypts ciphertext, which must include the
	// trailing tag produced by Seal. It fails with keyerr.AuthFailure if
	// authentication does not check out.
	Open(nonce, ciphertext []byte) ([]byte, error)
}

// chacha20poly1305Cipher is the Cipher backed by IETF ChaCha20-Poly1305.
type chacha20poly1305Cipher struct {
	aead cipherAEAD
}

// cipherAEAD is the subset of cipher.AEAD that chacha20poly1305Cipher needs,
// named locally so callers never have to import crypto/cipher directly.
type cipherAEAD interface {
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}

// New constructs a Cipher from a KeySize-byte key. It fails with
// keyerr.BadArgument if key is the wrong length.
func New(key []byte) (Cipher, error) {
	if len(key) != KeySize {
		return nil, keyerr.New(keyerr.BadArgument, "aead: key must be 32 bytes")
	}
	a, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, keyerr.Wrap(keyerr.BadArgument, err, "aead: constructing cipher")
	}
	return chacha20poly1305Cipher{aead: a}, nil
}

func (c chacha20poly1305Cipher) Seal(nonce, plaintext []byte) []byte {
	return c.aead.Seal(nil, nonce, plaintext, nil)
}

func (c chacha20poly1305Cipher) Open(nonce, ciphertext []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, keyerr.Wrap(keyerr.AuthFailure, err, "aead: authentication failed")
	}
	return plaintext, nil
}
