package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"haviaa/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeArrivalReminder = "notification:arrival"

func NewArrivalReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeArrivalReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(5),
		asynq.TaskID("arrival:" + payload.BookingID),
	}

	return task, opts, nil
}

// AsynqScheduler queues reminders on the asynq Redis queue.
type AsynqScheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewAsynqScheduler(client *asynq.Client, logger *zap.Logger) *AsynqScheduler {
	return &AsynqScheduler{client: client, logger: logger}
}

func (s *AsynqScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewArrivalReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", payload.BookingID, err)
	}
	s.logger.Info("Arrival reminder scheduled",
		zap.String("taskID", info.ID),
		zap.String("bookingID", payload.BookingID),
		zap.Time("fireAt", fireAt))
	return nil
}

// NoopScheduler drops reminders. Used when reminders are disabled.
type NoopScheduler struct {
	Logger *zap.Logger
}

func (s NoopScheduler) ScheduleReminder(_ context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	if s.Logger != nil {
		s.Logger.Debug("Reminders disabled, skipping", zap.String("bookingID", payload.BookingID), zap.Time("fireAt", fireAt))
	}
	return nil
}
