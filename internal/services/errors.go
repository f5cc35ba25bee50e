package services

import "errors"

// Error taxonomy surfaced to the transport layer. Services wrap these with
// fmt.Errorf("...: %w", ErrX) so handlers can classify with errors.Is while
// the message keeps the specifics.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)
