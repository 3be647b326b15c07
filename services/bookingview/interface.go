package bookingview

import (
	"context"
	"errors"
	"time"

	"travelhub/models"
)

// ErrBookingNotFound is returned by LoadForMutation when the record does not
// exist in the adapter's store.
var ErrBookingNotFound = errors.New("booking not found")

// SourceAdapter maps one legacy reservation store into the unified booking
// shape. Listing is partial-result tolerant: a record whose referenced service
// or account no longer resolves is skipped, never surfaced as an error.
type SourceAdapter interface {
	// Kind returns the source kind this adapter owns.
	Kind() string
	// ListByProvider returns the provider's bookings, pre-filtered by status
	// when the store supports it. The view re-applies the filter regardless.
	ListByProvider(ctx context.Context, providerID, status string) ([]models.Booking, error)
	// ListByCustomer returns the customer's bookings.
	ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error)
	// LoadForMutation resolves a single booking for a status change. The
	// returned commit writes the new status back to the native record.
	LoadForMutation(ctx context.Context, bookingID string) (*MutableBooking, error)
}

// CommitExtras carries the status-transition side data written by commit.
type CommitExtras struct {
	ConfirmationNumber string
	RejectionReason    string
	ResponseTimestamp  time.Time
}

// CommitFunc persists a status change on the native record.
type CommitFunc func(status string, extras CommitExtras) error

// MutableBooking pairs a unified snapshot with a commit against the record's
// native store. The snapshot's Provider.ID is always a normalized account id,
// whatever ownership representation the store uses.
type MutableBooking struct {
	Booking models.Booking
	Commit  CommitFunc
}

// ListQuery selects and pages the unified view.
type ListQuery struct {
	Status     string // optional, one of the four booking statuses
	SourceKind string // optional, limits the fan-out to one adapter
	Page       int    // 1-based
	PageSize   int
}

// ViewService is the merged, paginated read model over every source adapter.
type ViewService interface {
	ListForProvider(ctx context.Context, providerID string, q ListQuery) (*models.BookingPage, error)
	ListForCustomer(ctx context.Context, customerID string, q ListQuery) (*models.BookingPage, error)
}
