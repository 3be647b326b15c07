package notification

import (
	"encoding/json"

	"travelhub/models"

	"github.com/hibiken/asynq"
)

// TypeNotifyPush is the asynq task type for queued push deliveries.
const TypeNotifyPush = "notify:push"

// NewPushTask builds an asynq task carrying a push payload.
func NewPushTask(payload models.PushPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyPush, data), nil
}
