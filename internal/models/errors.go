package models

import "errors"

// Error classes surfaced by record construction and persistence. Callers
// match them with errors.Is; wrapped errors keep the underlying detail.
var (
	// ErrValidation: a required field is missing or a field has an
	// incompatible primitive shape.
	ErrValidation = errors.New("validation failed")

	// ErrParse: structured text is not well-formed JSON.
	ErrParse = errors.New("malformed JSON")

	// ErrIO: a file is missing, unreadable or unwritable.
	ErrIO = errors.New("file I/O failed")

	// ErrDeserialize: checkpoint bytes are corrupt or were produced by an
	// incompatible encoder version.
	ErrDeserialize = errors.New("checkpoint decode failed")
)
