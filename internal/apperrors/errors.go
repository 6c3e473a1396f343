package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidQuote indicates a structurally incomplete quote that cannot be
// finalized or rendered.
var ErrInvalidQuote = errors.New("invalid quote")
