package cron

import (
	"context"
	"encoding/json"
	"time"

	"travelhub/config"
	userRepo "travelhub/database/repository/user"
	"travelhub/models"
	"travelhub/services/notification"
	"travelhub/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitPushWorker runs the async push delivery worker in background. It drains
// the notify queue and delivers through FCM; a task for a recipient without a
// registered device token is dropped, not retried.
func InitPushWorker(users userRepo.UserRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeNotifyPush, handlePushTask(users))

	go monitorRedisConnection()

	go func() {
		logger.Info("push worker starting")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("push worker failed to start",
					zap.Int("attempt", attempts),
					zap.Int("max_attempts", maxAttempts),
					zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("push worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePushTask(users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.PushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("push handler: invalid payload", zap.Error(err))
			return err
		}

		recipient, err := users.GetByID(p.RecipientID)
		if err != nil {
			logger.Error("push handler: recipient lookup failed",
				zap.String("recipient_id", p.RecipientID), zap.Error(err))
			return err
		}
		if recipient == nil || recipient.FCMToken == "" {
			logger.Warn("push handler: recipient has no device token, dropping",
				zap.String("recipient_id", p.RecipientID))
			return nil
		}

		data := map[string]string{"kind": p.Kind}
		for k, v := range p.Metadata {
			data[k] = v
		}

		if utils.FCMClient == nil {
			logger.Warn("push handler: fcm not configured, dropping",
				zap.String("recipient_id", p.RecipientID))
			return nil
		}
		_, err = utils.FCMClient.Send(ctx, &messaging.Message{
			Token: recipient.FCMToken,
			Notification: &messaging.Notification{
				Title: p.Title,
				Body:  p.Body,
			},
			Data: data,
		})
		if err != nil {
			logger.Error("push handler: fcm send failed",
				zap.String("recipient_id", p.RecipientID), zap.Error(err))
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	logger := utils.GetLogger()

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("push worker: redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
