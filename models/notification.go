package models

import "time"

// Notification kinds emitted by the reservation core.
const (
	NotifyNewServiceBooking = "new_service_booking"
	NotifyNewTourBooking    = "new_tour_booking"
	NotifyBookingConfirmed  = "booking_confirmed"
	NotifyBookingCancelled  = "booking_cancelled"
	NotifyRequestApproved   = "provider_request_approved"
	NotifyRequestRejected   = "provider_request_rejected"
)

// Notification is the persisted in-app notification record. Push delivery is
// handled separately by the async worker; this record is the source of truth
// for the recipient's notification feed.
type Notification struct {
	ID          string            `bson:"id" json:"id"`
	RecipientID string            `bson:"recipient_id" json:"recipient_id"`
	Title       string            `bson:"title" json:"title"`
	Body        string            `bson:"body" json:"body"`
	Kind        string            `bson:"kind" json:"kind"`
	Metadata    map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Read        bool              `bson:"read" json:"read"`
	CreatedAt   time.Time         `bson:"created_at" json:"created_at"`
}

// PushPayload is the asynq task payload for a queued push delivery.
type PushPayload struct {
	RecipientID string            `json:"recipient_id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Kind        string            `json:"kind"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
