package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record (or the parent it should attach to) does not exist in the store.
// The shell maps this to a "not found" message.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. a blank trip, destination, or activity name).
var ErrValidation = errors.New(ErrValidationText)

// ErrValidationText is the message of ErrValidation, for callers that need to
// strip it from a wrapped error string.
const ErrValidationText = "validation error"
