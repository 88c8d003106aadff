// Package keyerr defines the error-kind taxonomy used at every recoverable
// boundary of this module (share construction, envelope encode/decode, the
// on-disk wire format, and the CLI). Pure arithmetic in poly, gf256 and z2
// never returns these kinds: a precondition violation there is a program
// error (panic), not a recoverable condition, per the package's stated
// policy.
//
// Call sites wrap one of the sentinel kinds below with
// github.com/pkg/errors, so errors.Is(err, keyerr.BadArgument) still
// identifies the kind while Cause(err) and the error's stack trace remain
// available for diagnostics.
package keyerr

import "github.com/pkg/errors"

// Sentinel error kinds. Compare against these with errors.Is.
var (
	// BadArgument is returned for validation failures at an API boundary:
	// a zero share count, threshold greater than share count, non-distinct
	// evaluation points, a mixed-variant share list, an empty share list, a
	// secret longer than 32 bytes for Shamir sharing, or mismatched share
	// lengths for XOR sharing.
	BadArgument = errors.New("keyshare: bad argument")

	// RandomFailure is returned when the entropy source fails.
	RandomFailure = errors.New("keyshare: random source failure")

	// AuthFailure is returned when the AEAD primitive rejects a
	// ciphertext, key or nonce combination.
	AuthFailure = errors.New("keyshare: authentication failure")

	// Encoding is returned when base64, UTF-8 or JSON decoding of an
	// external form fails.
	Encoding = errors.New("keyshare: encoding failure")

	// IoFailure is returned when a file or directory operation fails.
	IoFailure = errors.New("keyshare: io failure")
)

// Wrap annotates err with kind as its cause-comparable sentinel and msg as
// human-readable context, preserving err in the causal chain so both
// errors.Is(result, kind) and errors.Is(result, err) succeed.
func Wrap(kind error, err error, msg string) error {
	return errors.Wrap(wrapKind(kind, err), msg)
}

// New builds a fresh error of the given kind with the given message, for
// call sites that have no underlying error to wrap.
func New(kind error, msg string) error {
	return wrapKind(kind, errors.New(msg))
}

// wrapKind threads kind into err's chain without discarding err, via a
// lightweight adapter whose message is err's own and whose Is method
// matches kind.
func wrapKind(kind error, err error) error {
	return &kindError{kind: kind, err: err}
}

type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() error {
	return e.err
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Cause() error {
	return e.err
}
