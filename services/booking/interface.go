package booking

import (
	"context"
	"time"

	"haviaa/models"
)

// BookingStore owns the booking list and the slot availability derived from it.
type BookingStore interface {
	IsSlotAvailable(ctx context.Context, slot string) (bool, error)
	ListAvailableSlots(ctx context.Context, allSlots []string) ([]string, error)
	CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, id string) (*models.Booking, error)
	ReplaceBooking(ctx context.Context, id, note string) (*models.ReplacementRequest, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListReplacementRequests(ctx context.Context, userID string) ([]models.ReplacementRequest, error)
}

// HireService quotes and confirms hires on top of the store and the catalog.
type HireService interface {
	Quote(maidID string, months int, tier models.HoursTier) (*models.Quote, error)
	ConfirmHire(ctx context.Context, user models.User, req HireRequest) (*models.Booking, error)
}

// HireRequest is what a client picks on the booking screen.
type HireRequest struct {
	MaidID     string           `json:"maidId" binding:"required"`
	Months     int              `json:"duration" binding:"required"`
	DailyHours models.HoursTier `json:"dailyHours" binding:"required"`
	TimeSlot   string           `json:"timeSlot" binding:"required"`
}

// ReminderScheduler queues a user notification for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}
