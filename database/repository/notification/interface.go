package notificationRepo

import "travelhub/models"

// NotificationRepository defines data access for persisted notification records.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// ListByRecipient retrieves a recipient's notifications, newest first.
	ListByRecipient(recipientID string) ([]models.Notification, error)
	// MarkRead flags a notification as read. Returns (false, nil) when the
	// record does not exist or belongs to someone else.
	MarkRead(recipientID, notificationID string) (bool, error)
}
