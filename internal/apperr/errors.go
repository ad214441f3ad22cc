package apperr

import "errors"

// ErrValidation is returned when the input fails validation (HTTP 400).
var ErrValidation = errors.New("validation failed")

// ErrAuth indicates that the GPS provider login did not yield a session.
var ErrAuth = errors.New("gps login failed")

// ErrLookup indicates that the CRM could not resolve the order or courier.
var ErrLookup = errors.New("crm lookup failed")

// ErrNotFound indicates that no live position is available.
var ErrNotFound = errors.New("not found")
