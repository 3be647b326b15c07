package workflow

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"travelhub/models"
	"travelhub/services/bookingview"
	"travelhub/services/notification"
	"travelhub/utils"

	"go.uber.org/zap"
)

// allowedTransitions is the booking state machine. Cancelled and completed are
// terminal. A confirmed to confirmed request is handled separately as an
// idempotent no-op, it never reissues a confirmation number.
var allowedTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCancelled, models.StatusCompleted},
	models.StatusCancelled: {},
	models.StatusCompleted: {},
}

// TransitionInput carries the optional side data of a status change.
type TransitionInput struct {
	RejectionReason string
	// SourceKind narrows resolution to one adapter. When empty the engine
	// probes every adapter until one owns the booking id.
	SourceKind string
}

// Engine validates and applies booking status transitions through the source
// adapter that owns each record.
type Engine interface {
	Transition(ctx context.Context, bookingID, actorID, targetStatus string, input TransitionInput) (*models.Booking, error)
}

// DefaultEngine is the production Engine. Notifier is best-effort: a dispatch
// failure after commit is logged, the transition still reports success.
type DefaultEngine struct {
	Adapters []bookingview.SourceAdapter
	Notifier notification.Service

	// now and randomSource are swappable for tests. Transitions run
	// concurrently and rand.Rand is not goroutine-safe, so every draw from
	// randomSource holds randMu.
	now          func() time.Time
	randMu       sync.Mutex
	randomSource *rand.Rand
}

// NewDefaultEngine builds the engine over the given adapters.
func NewDefaultEngine(notifier notification.Service, adapters ...bookingview.SourceAdapter) *DefaultEngine {
	return &DefaultEngine{
		Adapters:     adapters,
		Notifier:     notifier,
		now:          time.Now,
		randomSource: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Transition applies targetStatus to the booking after checking ownership and
// the state machine, persisting through the owning adapter's commit.
func (e *DefaultEngine) Transition(ctx context.Context, bookingID, actorID, targetStatus string, input TransitionInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !models.IsValidStatus(targetStatus) {
		return nil, ErrUnknownStatus
	}

	mutable, err := e.resolve(ctx, bookingID, input.SourceKind)
	if err != nil {
		return nil, err
	}
	booking := mutable.Booking

	if booking.Provider.ID != actorID {
		return nil, ErrForbidden
	}

	// A repeated confirm returns the booking unchanged, keeping the original
	// confirmation number.
	if booking.Status == models.StatusConfirmed && targetStatus == models.StatusConfirmed {
		return &booking, nil
	}

	if !transitionAllowed(booking.Status, targetStatus) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, booking.Status, targetStatus)
	}

	now := e.now()
	extras := bookingview.CommitExtras{ResponseTimestamp: now}
	if targetStatus == models.StatusConfirmed && booking.ConfirmationNumber == "" {
		extras.ConfirmationNumber = e.generateConfirmationNumber(now)
	}
	if targetStatus == models.StatusCancelled && input.RejectionReason != "" {
		extras.RejectionReason = input.RejectionReason
	}

	if err := mutable.Commit(targetStatus, extras); err != nil {
		return nil, fmt.Errorf("failed to persist status transition: %w", err)
	}

	booking.Status = targetStatus
	booking.ResponseTimestamp = &now
	booking.UpdatedAt = now
	if extras.ConfirmationNumber != "" {
		booking.ConfirmationNumber = extras.ConfirmationNumber
	}
	if extras.RejectionReason != "" {
		booking.RejectionReason = extras.RejectionReason
	}

	e.dispatchNotification(ctx, &booking)

	logger.Info("booking status transition applied",
		zap.String("booking_id", booking.ID),
		zap.String("source_kind", booking.SourceKind),
		zap.String("status", targetStatus))
	return &booking, nil
}

// resolve finds the adapter that owns the booking. With a source kind the
// lookup goes straight to that adapter; without one, adapters are probed in
// registration order.
func (e *DefaultEngine) resolve(ctx context.Context, bookingID, sourceKind string) (*bookingview.MutableBooking, error) {
	for _, adapter := range e.Adapters {
		if sourceKind != "" && adapter.Kind() != sourceKind {
			continue
		}
		mutable, err := adapter.LoadForMutation(ctx, bookingID)
		if err == bookingview.ErrBookingNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		return mutable, nil
	}
	return nil, bookingview.ErrBookingNotFound
}

func transitionAllowed(current, target string) bool {
	for _, allowed := range allowedTransitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateConfirmationNumber builds a human-shareable code from a fixed
// prefix, the millisecond timestamp and a 4-character random suffix.
// Uniqueness is probabilistic, collisions are rare enough to accept.
func (e *DefaultEngine) generateConfirmationNumber(now time.Time) string {
	var suffix strings.Builder
	e.randMu.Lock()
	for i := 0; i < 4; i++ {
		suffix.WriteByte(confirmationAlphabet[e.randomSource.Intn(len(confirmationAlphabet))])
	}
	e.randMu.Unlock()
	return fmt.Sprintf("TR%d%s", now.UnixMilli(), suffix.String())
}

// dispatchNotification tells the customer about the provider's response.
// Failures are swallowed, the state change has already committed.
func (e *DefaultEngine) dispatchNotification(ctx context.Context, booking *models.Booking) {
	if e.Notifier == nil || booking.Customer.ID == "" {
		return
	}
	logger := utils.GetLogger()

	var title, body, kind string
	switch booking.Status {
	case models.StatusConfirmed:
		kind = models.NotifyBookingConfirmed
		title = "Booking confirmed"
		body = fmt.Sprintf("Your booking for %s is confirmed. Confirmation number: %s.",
			serviceLabel(booking), booking.ConfirmationNumber)
	case models.StatusCancelled:
		kind = models.NotifyBookingCancelled
		title = "Booking cancelled"
		if booking.RejectionReason != "" {
			body = fmt.Sprintf("Your booking for %s was cancelled: %s",
				serviceLabel(booking), booking.RejectionReason)
		} else {
			body = fmt.Sprintf("Your booking for %s was cancelled by the provider.",
				serviceLabel(booking))
		}
	default:
		return
	}

	err := e.Notifier.Notify(ctx, booking.Customer.ID, title, body, kind, map[string]string{
		"booking_id":  booking.ID,
		"source_kind": booking.SourceKind,
		"status":      booking.Status,
	})
	if err != nil {
		logger.Error("failed to dispatch booking notification",
			zap.String("booking_id", booking.ID),
			zap.Error(err))
	}
}

func serviceLabel(booking *models.Booking) string {
	if booking.Service.Name != "" {
		return booking.Service.Name
	}
	return "your reservation"
}
