package qualification

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRequest is returned when an active request already exists
	// for the same (user, provider type) pair.
	ErrDuplicateRequest = errors.New("an active request already exists for this provider type")
	// ErrRequestNotFound is returned when the referenced request does not exist.
	ErrRequestNotFound = errors.New("provider request not found")
	// ErrNotPending is returned when approving or rejecting a request that has
	// already been reviewed. Approved and rejected are terminal.
	ErrNotPending = errors.New("request has already been reviewed")
	// ErrReasonRequired is returned by Reject when no reason is supplied.
	ErrReasonRequired = errors.New("a rejection reason is required")
	// ErrUserNotFound is returned when the applicant account does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError carries every field that failed submission validation,
// keyed by the field's wire name. Validation never fails fast: the map holds
// all violations from a single pass.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request validation failed on %d field(s)", len(e.Fields))
}
