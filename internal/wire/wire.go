// Package wire implements the on-disk envelope and share file formats. Apart
// from the CLI in cmd/keyshare, it is the only package that touches os or
// encoding/json — envelope itself stays
// pure (bytes in, bytes out) so the core stays trivially callable from
// multiple goroutines with no shared mutable state.
package wire

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/corvid-labs/keyshare/envelope"
	"github.com/corvid-labs/keyshare/gf256"
	"github.com/corvid-labs/keyshare/keyerr"
	"github.com/corvid-labs/keyshare/share"
)

// cipherIVName is the literal filename an envelope's nonce and ciphertext
// are written to.
const cipherIVName = "cipher_iv"

// cipherIV is the on-disk JSON shape of the cipher_iv file.
type cipherIV struct {
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// WriteEnvelope writes sealed.Nonce and sealed.Ciphertext as the cipher_iv
// JSON file, and one share file per share named "<prefix>_<i>" for i in
// 0..n-1, inside dir. dir must already exist.
//
// WriteEnvelope writes cipher_iv before any share file, so a crash between
// writes leaves a recoverable directory: the ciphertext alone is useless
// without shares, and shares are regenerable by re-running Encode on the
// plaintext.
func WriteEnvelope(dir string, sealed envelope.Sealed, prefix string) error {
	civ := cipherIV{
		Nonce:      base64.StdEncoding.EncodeToString(sealed.Nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(sealed.Ciphertext),
	}
	body, err := json.Marshal(civ)
	if err != nil {
		return keyerr.Wrap(keyerr.Encoding, err, "wire: marshaling cipher_iv")
	}
	if err := writeFile(dir+"/"+cipherIVName, body); err != nil {
		return err
	}

	for i, s := range sealed.Shares {
		body, err := encodeShareFile(s)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%s/%s_%d", dir, prefix, i)
		if err := writeFile(name, body); err != nil {
			return err
		}
	}
	return nil
}

// ReadEnvelope reads cipher_iv and the n share files "<prefix>_<i>" for i in
// 0..n-1 from dir, returning the nonce, ciphertext, and decoded shares.
// shamir selects whether the share files are parsed as XOR or Shamir shares.
func ReadEnvelope(dir, prefix string, n int, shamir bool) (nonce, ciphertext []byte, shares []share.Share, err error) {
	body, err := readFile(dir + "/" + cipherIVName)
	if err != nil {
		return nil, nil, nil, err
	}
	var civ cipherIV
	if err := json.Unmarshal(body, &civ); err != nil {
		return nil, nil, nil, keyerr.Wrap(keyerr.Encoding, err, "wire: unmarshaling cipher_iv")
	}
	nonce, err = decodeB64(civ.Nonce)
	if err != nil {
		return nil, nil, nil, err
	}
	ciphertext, err = decodeB64(civ.Ciphertext)
	if err != nil {
		return nil, nil, nil, err
	}

	shares = make([]share.Share, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s/%s_%d", dir, prefix, i)
		body, err := readFile(name)
		if err != nil {
			return nil, nil, nil, err
		}
		s, err := decodeShareFile(body, shamir)
		if err != nil {
			return nil, nil, nil, err
		}
		shares[i] = s
	}
	return nonce, ciphertext, shares, nil
}

// encodeShareFile renders s as a leading space followed by base64(bytes)
// for an XOR share, or base64(x), a single space, and base64(y) for a
// Shamir share.
func encodeShareFile(s share.Share) ([]byte, error) {
	switch v := s.(type) {
	case share.Xor:
		return []byte(" " + base64.StdEncoding.EncodeToString(v.Bytes)), nil
	case share.Shamir:
		x := base64.StdEncoding.EncodeToString(v.X.ToBytes())
		y := base64.StdEncoding.EncodeToString(v.Y.ToBytes())
		return []byte(" " + x + " " + y), nil
	default:
		return nil, keyerr.New(keyerr.BadArgument, "wire: unknown share variant")
	}
}

// decodeShareFile parses a share file's contents, splitting on single spaces
// and ignoring the leading empty token produced by the leading separator.
func decodeShareFile(body []byte, shamir bool) (share.Share, error) {
	tokens := splitSingleSpace(string(body))
	if len(tokens) < 1 || tokens[0] != "" {
		return nil, keyerr.New(keyerr.Encoding, "wire: malformed share file")
	}
	tokens = tokens[1:]

	if !shamir {
		if len(tokens) != 1 {
			return nil, keyerr.New(keyerr.Encoding, "wire: expected one token for an XOR share")
		}
		b, err := decodeB64(tokens[0])
		if err != nil {
			return nil, err
		}
		return share.Xor{Bytes: b}, nil
	}

	if len(tokens) != 2 {
		return nil, keyerr.New(keyerr.Encoding, "wire: expected two tokens for a Shamir share")
	}
	xb, err := decodeB64(tokens[0])
	if err != nil {
		return nil, err
	}
	yb, err := decodeB64(tokens[1])
	if err != nil {
		return nil, err
	}
	return share.Shamir{X: gf256.FromBytes(xb), Y: gf256.FromBytes(yb)}, nil
}

func splitSingleSpace(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func decodeB64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, keyerr.Wrap(keyerr.Encoding, err, "wire: decoding base64")
	}
	return b, nil
}

func writeFile(path string, body []byte) error {
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return keyerr.Wrap(keyerr.IoFailure, err, "wire: writing "+path)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, keyerr.Wrap(keyerr.IoFailure, err, "wire: reading "+path)
	}
	return body, nil
}
