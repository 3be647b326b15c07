package notification

import (
	"context"

	"travelhub/models"
)

// Service is the notification dispatch hook. Notify is best-effort: the
// business operation that triggered it has already committed, so callers log
// a returned error and move on, they never fail the primary operation on it.
type Service interface {
	Notify(ctx context.Context, recipientID, title, body, kind string, metadata map[string]string) error
	ListForRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID string) error
}
