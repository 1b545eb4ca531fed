package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"haviaa/config"
	"haviaa/models"
	"haviaa/services/booking"
	"haviaa/services/notification"
	"haviaa/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection for the reminder queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the reminder worker in the background and returns
// the server so the caller can shut it down.
func InitReminderWorker(bookings booking.BookingStore, notifSvc notification.NotificationService, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeArrivalReminder, HandleArrivalReminder(bookings, notifSvc, logger))

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Reminder worker gave up; reminders will queue until restart")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandleArrivalReminder delivers the queued reminder to the user's inbox.
// Reminders for bookings that are gone or no longer active are dropped.
func HandleArrivalReminder(bookings booking.BookingStore, notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}
		if p.UserID == "" {
			logger.Warn("Reminder without user, dropping", zap.String("bookingID", p.BookingID))
			return nil
		}

		b, err := bookings.GetBooking(ctx, p.BookingID)
		if errors.Is(err, booking.ErrBookingNotFound) {
			logger.Warn("Reminder for unknown booking, dropping", zap.String("bookingID", p.BookingID))
			return nil
		}
		if err != nil {
			return err
		}
		if b.Status != models.BookingStatusActive {
			logger.Info("Booking no longer active, dropping reminder",
				zap.String("bookingID", b.ID),
				zap.String("status", string(b.Status)))
			return nil
		}

		data := map[string]any{
			"bookingId": p.BookingID,
			"fireDate":  p.FireDate,
		}
		if _, err := notifSvc.Deliver(ctx, p.UserID, p.Type, p.Message, data); err != nil {
			logger.Error("Failed to deliver reminder", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
