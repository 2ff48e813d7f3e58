package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hillescape/config"
	bookingRepo "hillescape/database/repository/booking"
	"hillescape/models"
	"hillescape/services/notification"

	"github.com/hibiken/asynq"
)

const TypeAdminAlert = "notification:admin"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewAdminAlertEnqueuer returns a function that queues a detached admin
// alert for a booking reference. The HTTP caller never sees the outcome.
func NewAdminAlertEnqueuer() func(reference string) error {
	client := asynq.NewClient(redisOpts())
	return func(reference string) error {
		payload, err := json.Marshal(models.NotificationTask{BookingReference: reference})
		if err != nil {
			return err
		}
		_, err = client.Enqueue(asynq.NewTask(TypeAdminAlert, payload))
		return err
	}
}

// InitNotifyWorker runs the async worker in background.
func InitNotifyWorker(notifSvc notification.NotificationService, repo bookingRepo.BookingRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAdminAlert, handleAdminAlertTask(notifSvc, repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleAdminAlertTask(notifSvc notification.NotificationService, repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NotificationTask
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyWorker] invalid payload: %v", err)
			return err
		}

		booking, err := repo.GetByReference(ctx, p.BookingReference)
		if err != nil {
			log.Printf("[NotifyWorker] booking %s not found: %v", p.BookingReference, err)
			return err
		}

		outcome := notifSvc.SendAdminAlert(ctx, *booking)
		log.Printf("[NotifyWorker] admin alert for %s delivered=%t provider=%s",
			p.BookingReference, outcome.Delivered, outcome.Provider)
		return nil
	}
}
