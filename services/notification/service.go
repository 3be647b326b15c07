package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationRepo "travelhub/database/repository/notification"
	"travelhub/models"
	"travelhub/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ErrNotificationNotFound is returned by MarkRead when no record matches the
// recipient and id.
var ErrNotificationNotFound = errors.New("notification not found")

// DefaultService persists the in-app record and queues the push. The record is
// the authoritative part; a queue failure only costs the push, so it is logged
// and not returned.
type DefaultService struct {
	Repo  notificationRepo.NotificationRepository
	Queue *asynq.Client
}

// Notify stores a notification record and enqueues its push delivery.
func (s *DefaultService) Notify(ctx context.Context, recipientID, title, body, kind string, metadata map[string]string) error {
	logger := utils.GetLogger()

	if recipientID == "" {
		return errors.New("notify: empty recipient")
	}

	record := &models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Kind:        kind,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(record); err != nil {
		return fmt.Errorf("notify: failed to persist notification: %w", err)
	}

	if s.Queue == nil {
		return nil
	}
	task, err := NewPushTask(models.PushPayload{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Kind:        kind,
		Metadata:    metadata,
	})
	if err != nil {
		logger.Error("notify: failed to build push task", zap.Error(err))
		return nil
	}
	if _, err := s.Queue.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		logger.Error("notify: failed to enqueue push",
			zap.String("recipient", recipientID),
			zap.String("kind", kind),
			zap.Error(err))
	}
	return nil
}

// ListForRecipient returns the recipient's notification feed, newest first.
func (s *DefaultService) ListForRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(recipientID)
}

// MarkRead flags one of the recipient's notifications as read.
func (s *DefaultService) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	matched, err := s.Repo.MarkRead(recipientID, notificationID)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotificationNotFound
	}
	return nil
}
