package wire

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/corvid-labs/keyshare/envelope"
)

func TestWriteReadEnvelopeShamir(t *testing.T) {
	dir := t.TempDir()
	plaintext := []byte("Hello, World!")

	sealed, err := envelope.Encode(plaintext, 5, 3, envelope.Shamir)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := WriteEnvelope(dir, sealed, "share"); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, cipherIVName)); err != nil {
		t.Fatalf("cipher_iv not written: %v", err)
	}

	nonce, ciphertext, shares, err := ReadEnvelope(dir, "share", 5, true)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	if !bytes.Equal(nonce, sealed.Nonce) {
		t.Errorf("nonce = %v, want %v", nonce, sealed.Nonce)
	}
	if !bytes.Equal(ciphertext, sealed.Ciphertext) {
		t.Errorf("ciphertext = %v, want %v", ciphertext, sealed.Ciphertext)
	}

	got, err := envelope.Decode(nonce, ciphertext, shares[:3], envelope.Shamir)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("got %v, want %v", got, plaintext)
	}
}

func TestWriteReadEnvelopeXor(t *testing.T) {
	dir := t.TempDir()
	plaintext := []byte("another message")

	sealed, err := envelope.Encode(plaintext, 4, 0, envelope.XOR)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := WriteEnvelope(dir, sealed, "piece"); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}

	nonce, ciphertext, shares, err := ReadEnvelope(dir, "piece", 4, false)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}

	got, err := envelope.Decode(nonce, ciphertext, shares, envelope.XOR)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("got %v, want %v", got, plaintext)
	}
}

func TestReadEnvelopeMissingDirFails(t *testing.T) {
	_, _, _, err := ReadEnvelope("/nonexistent/path/xyz", "share", 3, true)
	if err == nil {
		t.Errorf("expected an error reading from a missing directory")
	}
}

func TestDecodeShareFileRejectsMalformed(t *testing.T) {
	if _, err := decodeShareFile([]byte("no-leading-space"), false); err == nil {
		t.Errorf("expected error for a share file with no leading space")
	}
}
