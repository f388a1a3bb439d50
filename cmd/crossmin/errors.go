package main

import "errors"

// ErrUnknownOption is the CLI-level member of the closed error taxonomy
// (ioformat.ErrMalformedInput, ioformat.ErrStructuralViolation,
// ioformat.ErrIOFailure round out the other three): an unrecognised flag
// value, as opposed to a problem with the input graph itself.
var ErrUnknownOption = errors.New("crossmin: unknown option")
