package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a file extension outside the supported
	// set (.pdf .docx .md .pptx). Not fatal to a batch walk.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyResult indicates a walk or aggregate fetch produced no
	// documents. It does not distinguish a bad root path from a root full
	// of unparseable files; callers needing that distinction must inspect
	// the per-item report.
	ErrEmptyResult = errors.New("no documents produced")

	// ErrPeerResolution indicates a screen name could not be resolved to a
	// usable peer id. Fatal to the whole peer-normalisation call.
	ErrPeerResolution = errors.New("peer resolution failed")
)
