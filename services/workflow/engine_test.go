package workflow

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"travelhub/models"
	"travelhub/services/bookingview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commitRecord struct {
	status string
	extras bookingview.CommitExtras
}

// fakeAdapter serves bookings from memory and records commits.
type fakeAdapter struct {
	kind     string
	bookings map[string]models.Booking
	commits  []commitRecord
	loadErr  error
}

func (f *fakeAdapter) Kind() string { return f.kind }

func (f *fakeAdapter) ListByProvider(ctx context.Context, providerID, status string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeAdapter) ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeAdapter) LoadForMutation(ctx context.Context, bookingID string) (*bookingview.MutableBooking, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, bookingview.ErrBookingNotFound
	}
	return &bookingview.MutableBooking{
		Booking: booking,
		Commit: func(status string, extras bookingview.CommitExtras) error {
			f.commits = append(f.commits, commitRecord{status: status, extras: extras})
			booking.Status = status
			if extras.ConfirmationNumber != "" {
				booking.ConfirmationNumber = extras.ConfirmationNumber
			}
			if extras.RejectionReason != "" {
				booking.RejectionReason = extras.RejectionReason
			}
			f.bookings[bookingID] = booking
			return nil
		},
	}, nil
}

func newTestEngine(adapters ...bookingview.SourceAdapter) *DefaultEngine {
	return NewDefaultEngine(nil, adapters...)
}

func pendingBooking(id, providerID string) models.Booking {
	return models.Booking{
		ID:         id,
		SourceKind: models.SourceGeneric,
		Provider:   models.BookingProvider{ID: providerID},
		Customer:   models.BookingCustomer{ID: "cust-1"},
		Status:     models.StatusPending,
	}
}

var confirmationPattern = regexp.MustCompile(`^TR\d+[A-Z0-9]{4}$`)

func TestTransitionConfirmGeneratesConfirmationNumber(t *testing.T) {
	adapter := &fakeAdapter{
		kind:     models.SourceGeneric,
		bookings: map[string]models.Booking{"b1": pendingBooking("b1", "prov-1")},
	}
	engine := newTestEngine(adapter)

	booking, err := engine.Transition(context.Background(), "b1", "prov-1", models.StatusConfirmed, TransitionInput{})
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Regexp(t, confirmationPattern, booking.ConfirmationNumber)
	require.NotNil(t, booking.ResponseTimestamp)

	require.Len(t, adapter.commits, 1)
	assert.Equal(t, models.StatusConfirmed, adapter.commits[0].status)
	assert.Equal(t, booking.ConfirmationNumber, adapter.commits[0].extras.ConfirmationNumber)
}

func TestTransitionRepeatedConfirmIsIdempotent(t *testing.T) {
	adapter := &fakeAdapter{
		kind:     models.SourceGeneric,
		bookings: map[string]models.Booking{"b1": pendingBooking("b1", "prov-1")},
	}
	engine := newTestEngine(adapter)

	first, err := engine.Transition(context.Background(), "b1", "prov-1", models.StatusConfirmed, TransitionInput{})
	require.NoError(t, err)

	second, err := engine.Transition(context.Background(), "b1", "prov-1", models.StatusConfirmed, TransitionInput{})
	require.NoError(t, err)

	assert.Equal(t, first.ConfirmationNumber, second.ConfirmationNumber)
	// Only the first confirm committed.
	assert.Len(t, adapter.commits, 1)
}

func TestTransitionRejectsInvalidMoves(t *testing.T) {
	cases := []struct {
		name    string
		current string
		target  string
	}{
		{"pending to completed", models.StatusPending, models.StatusCompleted},
		{"cancelled to confirmed", models.StatusCancelled, models.StatusConfirmed},
		{"cancelled to completed", models.StatusCancelled, models.StatusCompleted},
		{"cancelled to pending", models.StatusCancelled, models.StatusPending},
		{"completed to confirmed", models.StatusCompleted, models.StatusConfirmed},
		{"completed to cancelled", models.StatusCompleted, models.StatusCancelled},
		{"confirmed to pending", models.StatusConfirmed, models.StatusPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := pendingBooking("b1", "prov-1")
			booking.Status = tc.current
			adapter := &fakeAdapter{
				kind:     models.SourceGeneric,
				bookings: map[string]models.Booking{"b1": booking},
			}
			engine := newTestEngine(adapter)

			_, err := engine.Transition(context.Background(), "b1", "prov-1", tc.target, TransitionInput{})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, adapter.commits)
		})
	}
}

func TestTransitionAllowsConfirmedLifecycle(t *testing.T) {
	adapter := &fakeAdapter{
		kind:     models.SourceGeneric,
		bookings: map[string]models.Booking{"b1": pendingBooking("b1", "prov-1")},
	}
	engine := newTestEngine(adapter)
	ctx := context.Background()

	_, err := engine.Transition(ctx, "b1", "prov-1", models.StatusConfirmed, TransitionInput{})
	require.NoError(t, err)

	booking, err := engine.Transition(ctx, "b1", "prov-1", models.StatusCompleted, TransitionInput{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, booking.Status)
}

func TestTransitionCancelStoresReason(t *testing.T) {
	adapter := &fakeAdapter{
		kind:     models.SourceGeneric,
		bookings: map[string]models.Booking{"b1": pendingBooking("b1", "prov-1")},
	}
	engine := newTestEngine(adapter)

	booking, err := engine.Transition(context.Background(), "b1", "prov-1", models.StatusCancelled, TransitionInput{
		RejectionReason: "fully booked that week",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCancelled, booking.Status)
	assert.Equal(t, "fully booked that week", booking.RejectionReason)
	assert.Empty(t, booking.ConfirmationNumber)
}

func TestTransitionForbiddenForOtherActor(t *testing.T) {
	adapter := &fakeAdapter{
		kind:     models.SourceGeneric,
		bookings: map[string]models.Booking{"b1": pendingBooking("b1", "prov-1")},
	}
	engine := newTestEngine(adapter)

	_, err := engine.Transition(context.Background(), "b1", "someone-else", models.StatusConfirmed, TransitionInput{})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, adapter.commits)
}

func TestTransitionUnknownStatus(t *testing.T) {
	engine := newTestEngine(&fakeAdapter{kind: models.SourceGeneric, bookings: map[string]models.Booking{}})

	_, err := engine.Transition(context.Background(), "b1", "prov-1", "shipped", TransitionInput{})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTransitionNotFoundAcrossAdapters(t *testing.T) {
	engine := newTestEngine(
		&fakeAdapter{kind: models.SourceGeneric, bookings: map[string]models.Booking{}},
		&fakeAdapter{kind: models.SourceTour, bookings: map[string]models.Booking{}},
	)

	_, err := engine.Transition(context.Background(), "missing", "prov-1", models.StatusConfirmed, TransitionInput{})
	assert.ErrorIs(t, err, bookingview.ErrBookingNotFound)
}

func TestTransitionSourceKindRoutesToOwningAdapter(t *testing.T) {
	generic := &fakeAdapter{kind: models.SourceGeneric, loadErr: errors.New("generic store down")}
	tour := &fakeAdapter{
		kind: models.SourceTour,
		bookings: map[string]models.Booking{
			"t1": {
				ID:         "t1",
				SourceKind: models.SourceTour,
				Provider:   models.BookingProvider{ID: "prov-1"},
				Customer:   models.BookingCustomer{ID: "cust-1"},
				Status:     models.StatusPending,
			},
		},
	}
	engine := newTestEngine(generic, tour)

	// Without the source kind the probe hits the broken generic store first.
	_, err := engine.Transition(context.Background(), "t1", "prov-1", models.StatusConfirmed, TransitionInput{})
	require.Error(t, err)

	booking, err := engine.Transition(context.Background(), "t1", "prov-1", models.StatusConfirmed, TransitionInput{
		SourceKind: models.SourceTour,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
}

// Providers confirm independently, so one engine serves concurrent
// transitions. Run with the race detector.
func TestTransitionConcurrentConfirms(t *testing.T) {
	generic := &fakeAdapter{
		kind:     models.SourceGeneric,
		bookings: map[string]models.Booking{"g1": pendingBooking("g1", "prov-1")},
	}
	tourBooking := pendingBooking("t1", "prov-1")
	tourBooking.SourceKind = models.SourceTour
	tour := &fakeAdapter{
		kind:     models.SourceTour,
		bookings: map[string]models.Booking{"t1": tourBooking},
	}
	engine := newTestEngine(generic, tour)

	targets := []struct{ id, kind string }{
		{"g1", models.SourceGeneric},
		{"t1", models.SourceTour},
	}
	results := make([]*models.Booking, len(targets))
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, id, kind string) {
			defer wg.Done()
			results[i], errs[i] = engine.Transition(context.Background(), id, "prov-1",
				models.StatusConfirmed, TransitionInput{SourceKind: kind})
		}(i, target.id, target.kind)
	}
	wg.Wait()

	for i := range targets {
		require.NoError(t, errs[i])
		assert.Equal(t, models.StatusConfirmed, results[i].Status)
		assert.Regexp(t, confirmationPattern, results[i].ConfirmationNumber)
	}
}

func TestConfirmationNumbersDiffer(t *testing.T) {
	engine := newTestEngine()
	now := time.Now()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := engine.generateConfirmationNumber(now)
		assert.Regexp(t, confirmationPattern, code)
		seen[code] = true
	}
	// 50 draws of a 4-character suffix should essentially never all collide.
	assert.Greater(t, len(seen), 1)
}
