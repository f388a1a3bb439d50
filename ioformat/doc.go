// Package ioformat holds the error taxonomy shared by the three file
// dialects (sgf, dot, ord): ErrMalformedInput for syntax
// problems, ErrStructuralViolation for layer-invariant violations, and
// ErrIOFailure for failures reading or writing the underlying stream.
package ioformat
