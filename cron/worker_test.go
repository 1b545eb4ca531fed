package cron

import (
	"context"
	"testing"
	"time"

	bookingRepo "haviaa/database/repository/booking"
	kvRepo "haviaa/database/repository/kv"
	lockRepo "haviaa/database/repository/lock"
	userRepo "haviaa/database/repository/user"
	"haviaa/models"
	"haviaa/services/booking"
	"haviaa/services/notification"
	"haviaa/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func newWorkerDeps(t *testing.T) (*booking.DefaultBookingStore, notification.NotificationService, *zap.Logger) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	store := kvRepo.NewMemoryStore()
	locker := lockRepo.NewLocalLocker()
	bookings := booking.NewBookingStore(bookingRepo.NewKVBookingRepo(store), locker, logger, true)
	svc := notification.NewDefaultNotificationService(userRepo.NewKVUserRepo(store), locker, logger)
	return bookings, svc, logger
}

func createBooking(t *testing.T, bookings booking.BookingStore, userID string) *models.Booking {
	t.Helper()
	b, err := bookings.CreateBooking(context.Background(), models.BookingDraft{
		MaidID:          "1",
		UserID:          userID,
		Duration:        3,
		DailyHours:      models.TierFourHours,
		TimeSlot:        "9:00 AM - 11:00 AM",
		StartDate:       "2025-03-13",
		TotalAmount:     45000,
		AdvanceAmount:   13500,
		RemainingAmount: 31500,
		AdvancePaid:     true,
	})
	require.NoError(t, err)
	return b
}

func arrivalTask(t *testing.T, userID, bookingID string) *asynq.Task {
	t.Helper()
	task, _, err := tasks.NewArrivalReminderTask(models.ReminderPayload{
		UserID:    userID,
		BookingID: bookingID,
		Type:      models.NotificationArrival,
		Message:   "Priya Sharma will arrive today for your 9:00 AM - 11:00 AM slot.",
		FireDate:  "2025-03-13",
	}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return task
}

func TestHandleArrivalReminderDeliversToInbox(t *testing.T) {
	ctx := context.Background()
	bookings, svc, logger := newWorkerDeps(t)
	b := createBooking(t, bookings, "user-1")

	require.NoError(t, HandleArrivalReminder(bookings, svc, logger)(ctx, arrivalTask(t, "user-1", b.ID)))

	inbox, err := svc.ListNotifications(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationArrival, inbox[0].Type)
	assert.Equal(t, b.ID, inbox[0].Data["bookingId"])
	assert.Equal(t, "2025-03-13", inbox[0].Data["fireDate"])
}

func TestHandleArrivalReminderSkipsInactiveBookings(t *testing.T) {
	ctx := context.Background()
	bookings, svc, logger := newWorkerDeps(t)
	handle := HandleArrivalReminder(bookings, svc, logger)

	cancelled := createBooking(t, bookings, "user-1")
	_, err := bookings.CancelBooking(ctx, cancelled.ID, "moving")
	require.NoError(t, err)
	require.NoError(t, handle(ctx, arrivalTask(t, "user-1", cancelled.ID)))

	completed := createBooking(t, bookings, "user-2")
	_, err = bookings.CompleteBooking(ctx, completed.ID)
	require.NoError(t, err)
	require.NoError(t, handle(ctx, arrivalTask(t, "user-2", completed.ID)))

	require.NoError(t, handle(ctx, arrivalTask(t, "user-3", "no-such-booking")))

	for _, userID := range []string{"user-1", "user-2", "user-3"} {
		inbox, err := svc.ListNotifications(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, inbox, userID)
	}
}

func TestHandleArrivalReminderRejectsBadPayload(t *testing.T) {
	bookings, svc, logger := newWorkerDeps(t)

	err := HandleArrivalReminder(bookings, svc, logger)(context.Background(), asynq.NewTask(tasks.TypeArrivalReminder, []byte("{")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
