package ioformat

import "errors"

// Sentinel errors every ioformat sub-package wraps its failures in, so
// callers can discriminate with errors.Is without depending on a specific
// dialect's package.
var (
	// ErrMalformedInput indicates the input stream did not follow the
	// dialect's line grammar (unexpected token, missing header, bad field).
	ErrMalformedInput = errors.New("ioformat: malformed input")

	// ErrStructuralViolation indicates the input parsed but described a
	// graph that violates the layered model's invariants (duplicate
	// position, edge between non-adjacent layers, unknown node reference).
	ErrStructuralViolation = errors.New("ioformat: structural violation")

	// ErrIOFailure indicates the underlying reader or writer returned an
	// error unrelated to the content itself.
	ErrIOFailure = errors.New("ioformat: io failure")
)
