package booking

import (
	"context"
	"fmt"
	"time"

	"haviaa/models"
	"haviaa/services/catalog"
	"haviaa/services/pricing"

	"go.uber.org/zap"
)

// DefaultHireService implements HireService.
type DefaultHireService struct {
	Store     BookingStore
	Catalog   catalog.CatalogService
	Reminders ReminderScheduler
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewHireService(store BookingStore, cat catalog.CatalogService, reminders ReminderScheduler, logger *zap.Logger) *DefaultHireService {
	return &DefaultHireService{
		Store:     store,
		Catalog:   cat,
		Reminders: reminders,
		Logger:    logger,
		Now:       time.Now,
	}
}

// Quote prices a hire of maidID at its listed monthly rate.
func (s *DefaultHireService) Quote(maidID string, months int, tier models.HoursTier) (*models.Quote, error) {
	maid, err := s.Catalog.Get(maidID)
	if err != nil {
		return nil, err
	}
	q, err := pricing.Calculate(maid.MonthlyPrice, months, tier, s.Now())
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ConfirmHire books the maid once the advance is (mock) paid and queues the arrival reminder.
func (s *DefaultHireService) ConfirmHire(ctx context.Context, user models.User, req HireRequest) (*models.Booking, error) {
	if !user.HasCompleteProfile() {
		return nil, ErrProfileIncomplete
	}
	if !models.IsKnownSlot(req.TimeSlot) {
		return nil, fmt.Errorf("%w: unknown time slot %q", ErrInvalidBooking, req.TimeSlot)
	}
	if !validDuration(req.Months) {
		return nil, fmt.Errorf("%w: duration must be one of %v months", ErrInvalidBooking, models.DurationOptions)
	}

	maid, err := s.Catalog.Get(req.MaidID)
	if err != nil {
		return nil, err
	}
	quote, err := s.Quote(maid.ID, req.Months, req.DailyHours)
	if err != nil {
		return nil, err
	}

	booking, err := s.Store.CreateBooking(ctx, models.BookingDraft{
		MaidID:          maid.ID,
		UserID:          user.ID,
		Duration:        req.Months,
		DailyHours:      req.DailyHours,
		TimeSlot:        req.TimeSlot,
		StartDate:       quote.StartDateString(),
		TotalAmount:     quote.Total,
		AdvanceAmount:   quote.Advance,
		RemainingAmount: quote.Remaining,
		AdvancePaid:     true,
	})
	if err != nil {
		return nil, err
	}

	s.scheduleArrival(ctx, booking, maid, quote.StartDate)
	return booking, nil
}

func (s *DefaultHireService) scheduleArrival(ctx context.Context, b *models.Booking, maid *models.Maid, startDate time.Time) {
	if s.Reminders == nil {
		return
	}
	payload := models.ReminderPayload{
		UserID:    b.UserID,
		BookingID: b.ID,
		Type:      models.NotificationArrival,
		Message:   fmt.Sprintf("%s will arrive today for your %s slot.", maid.Name, b.TimeSlot),
		FireDate:  b.StartDate,
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, startDate); err != nil {
		s.Logger.Warn("Failed to schedule arrival reminder",
			zap.String("bookingID", b.ID),
			zap.Error(err))
	}
}

func validDuration(months int) bool {
	for _, m := range models.DurationOptions {
		if m == months {
			return true
		}
	}
	return false
}
