package workflow

import "errors"

var (
	// ErrForbidden is returned when the actor is not the booking's provider.
	ErrForbidden = errors.New("actor is not the provider of this booking")
	// ErrInvalidTransition is returned for a status change the state machine
	// does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUnknownStatus is returned when the requested target is not one of
	// the four booking statuses.
	ErrUnknownStatus = errors.New("unknown booking status")
)
