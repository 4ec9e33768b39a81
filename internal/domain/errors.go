package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrUserNotFound     = errors.New("user not found")
)

// ErrNotEligible covers a missing event, a wrong source status and a
// non-author actor alike, so callers cannot probe another event's status.
var (
	ErrNotEligible        = errors.New("event not found or not eligible for this transition")
	ErrForbidden          = errors.New("role is not allowed to perform this action")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrAllocationRejected = errors.New("allocation rejected")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
