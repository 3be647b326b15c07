package notification

import (
	"context"
	"testing"

	"travelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(n *models.Notification) error {
	return m.Called(n).Error(0)
}
func (m *mockNotificationRepo) ListByRecipient(recipientID string) ([]models.Notification, error) {
	args := m.Called(recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}
func (m *mockNotificationRepo) MarkRead(recipientID, notificationID string) (bool, error) {
	args := m.Called(recipientID, notificationID)
	return args.Bool(0), args.Error(1)
}

func TestNotifyPersistsRecord(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("Create", mock.Anything).Return(nil)

	// No queue client wired: the record alone still commits.
	svc := &DefaultService{Repo: repo}
	err := svc.Notify(context.Background(), "user-1", "Booking confirmed", "See you soon", models.NotifyBookingConfirmed, map[string]string{
		"booking_id": "b1",
	})
	require.NoError(t, err)

	repo.AssertCalled(t, "Create", mock.MatchedBy(func(n *models.Notification) bool {
		return n.RecipientID == "user-1" &&
			n.Kind == models.NotifyBookingConfirmed &&
			n.ID != "" &&
			!n.Read
	}))
}

func TestNotifyRejectsEmptyRecipient(t *testing.T) {
	svc := &DefaultService{Repo: new(mockNotificationRepo)}
	err := svc.Notify(context.Background(), "", "t", "b", models.NotifyBookingConfirmed, nil)
	assert.Error(t, err)
}

func TestMarkReadNotFound(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("MarkRead", "user-1", "missing").Return(false, nil)

	svc := &DefaultService{Repo: repo}
	err := svc.MarkRead(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkReadMatched(t *testing.T) {
	repo := new(mockNotificationRepo)
	repo.On("MarkRead", "user-1", "n1").Return(true, nil)

	svc := &DefaultService{Repo: repo}
	assert.NoError(t, svc.MarkRead(context.Background(), "user-1", "n1"))
}
