package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown role).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would violate a uniqueness rule,
// such as two users sharing an email address.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when credentials or a bearer token are missing,
// malformed, or do not match. Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when an authenticated caller may not perform the
// requested operation. Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrLookupFailed marks a backing-store read failure during a traveler claim.
// It always wraps the underlying store error as well.
var ErrLookupFailed = errors.New("lookup failed")

// ErrWriteFailed marks a backing-store write failure during a traveler claim.
// It always wraps the underlying store error as well.
var ErrWriteFailed = errors.New("write failed")
