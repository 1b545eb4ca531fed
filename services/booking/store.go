package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "haviaa/database/repository/booking"
	lockRepo "haviaa/database/repository/lock"
	"haviaa/models"
	"haviaa/services/pricing"
	"haviaa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReplacementReviewWindow is how long staff have to act on a replacement request.
const ReplacementReviewWindow = 24 * time.Hour

// DefaultBookingStore implements BookingStore over a BookingRepository.
// Every read-modify-write runs under the bookings lock.
type DefaultBookingStore struct {
	Repo   bookingRepo.BookingRepository
	Locker lockRepo.Locker
	Logger *zap.Logger
	// EnforceSingleActive rejects a second active booking for the same user.
	EnforceSingleActive bool
	Now                 func() time.Time
}

func NewBookingStore(repo bookingRepo.BookingRepository, locker lockRepo.Locker, logger *zap.Logger, enforceSingleActive bool) *DefaultBookingStore {
	return &DefaultBookingStore{
		Repo:                repo,
		Locker:              locker,
		Logger:              logger,
		EnforceSingleActive: enforceSingleActive,
		Now:                 time.Now,
	}
}

func (s *DefaultBookingStore) IsSlotAvailable(ctx context.Context, slot string) (bool, error) {
	bookings, err := s.Repo.LoadBookings(ctx)
	if err != nil {
		return false, err
	}
	return isSlotAvailable(bookings, slot), nil
}

func (s *DefaultBookingStore) ListAvailableSlots(ctx context.Context, allSlots []string) ([]string, error) {
	bookings, err := s.Repo.LoadBookings(ctx)
	if err != nil {
		return nil, err
	}
	return availableSlots(bookings, allSlots), nil
}

func (s *DefaultBookingStore) CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	if draft.MaidID == "" || draft.UserID == "" || draft.TimeSlot == "" {
		return nil, fmt.Errorf("%w: maid, user and time slot are required", ErrInvalidBooking)
	}
	if draft.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be at least one month, got %d", ErrInvalidBooking, draft.Duration)
	}
	if _, err := pricing.MultiplierPct(draft.DailyHours); err != nil {
		return nil, fmt.Errorf("%w: %d daily hours is not offered", ErrInvalidBooking, draft.DailyHours)
	}

	unlock, err := s.Locker.Lock(ctx, utils.BookingsKey)
	if err != nil {
		return nil, lockError(err)
	}
	defer unlock()

	bookings, err := s.Repo.LoadBookings(ctx)
	if err != nil {
		return nil, err
	}
	if !isSlotAvailable(bookings, draft.TimeSlot) {
		utils.SlotConflicts.Inc()
		return nil, fmt.Errorf("%w: %s", ErrSlotUnavailable, draft.TimeSlot)
	}
	if s.EnforceSingleActive && hasActiveBooking(bookings, draft.UserID) {
		return nil, ErrActiveBookingExists
	}

	now := s.Now().UTC()
	b := models.Booking{
		ID:              uuid.NewString(),
		MaidID:          draft.MaidID,
		UserID:          draft.UserID,
		Duration:        draft.Duration,
		DailyHours:      draft.DailyHours,
		TimeSlot:        draft.TimeSlot,
		StartDate:       draft.StartDate,
		TotalAmount:     draft.TotalAmount,
		AdvanceAmount:   draft.AdvanceAmount,
		RemainingAmount: draft.RemainingAmount,
		Status:          models.BookingStatusActive,
		AdvancePaid:     draft.AdvancePaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.SaveBookings(ctx, append(bookings, b)); err != nil {
		return nil, err
	}

	utils.BookingTransitions.WithLabelValues(string(models.BookingStatusActive)).Inc()
	s.Logger.Info("Booking created",
		zap.String("bookingID", b.ID),
		zap.String("userID", b.UserID),
		zap.String("maidID", b.MaidID),
		zap.String("timeSlot", b.TimeSlot))
	return &b, nil
}

func (s *DefaultBookingStore) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: a cancellation reason is required", ErrInvalidBooking)
	}
	return s.transition(ctx, id, models.BookingStatusCancelled, func(b *models.Booking) {
		b.CancelReason = reason
	})
}

func (s *DefaultBookingStore) CompleteBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.transition(ctx, id, models.BookingStatusCompleted, nil)
}

// transition moves an active booking to a terminal status.
func (s *DefaultBookingStore) transition(ctx context.Context, id string, to models.BookingStatus, mutate func(b *models.Booking)) (*models.Booking, error) {
	unlock, err := s.Locker.Lock(ctx, utils.BookingsKey)
	if err != nil {
		return nil, lockError(err)
	}
	defer unlock()

	bookings, err := s.Repo.LoadBookings(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(bookings, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	if bookings[i].Status.IsTerminal() {
		return nil, fmt.Errorf("%w: booking %s is %s", ErrAlreadyTerminal, id, bookings[i].Status)
	}

	bookings[i].Status = to
	bookings[i].UpdatedAt = s.Now().UTC()
	if mutate != nil {
		mutate(&bookings[i])
	}
	if err := s.Repo.SaveBookings(ctx, bookings); err != nil {
		return nil, err
	}

	utils.BookingTransitions.WithLabelValues(string(to)).Inc()
	s.Logger.Info("Booking status changed", zap.String("bookingID", id), zap.String("status", string(to)))
	updated := bookings[i]
	return &updated, nil
}

// ReplaceBooking files a replacement request for staff review. The booking is left as it is.
func (s *DefaultBookingStore) ReplaceBooking(ctx context.Context, id, note string) (*models.ReplacementRequest, error) {
	unlock, err := s.Locker.Lock(ctx, utils.BookingsKey)
	if err != nil {
		return nil, lockError(err)
	}
	defer unlock()

	bookings, err := s.Repo.LoadBookings(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(bookings, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	if bookings[i].Status != models.BookingStatusActive {
		return nil, fmt.Errorf("%w: booking %s is %s", ErrAlreadyTerminal, id, bookings[i].Status)
	}

	requests, err := s.Repo.LoadReplacementRequests(ctx)
	if err != nil {
		return nil, err
	}
	now := s.Now().UTC()
	req := models.ReplacementRequest{
		ID:        uuid.NewString(),
		BookingID: id,
		UserID:    bookings[i].UserID,
		MaidID:    bookings[i].MaidID,
		Note:      strings.TrimSpace(note),
		Status:    models.ReplacementPendingReview,
		CreatedAt: now,
		ReviewBy:  now.Add(ReplacementReviewWindow),
	}
	if err := s.Repo.SaveReplacementRequests(ctx, append(requests, req)); err != nil {
		return nil, err
	}

	utils.ReplacementRequests.Inc()
	s.Logger.Info("Replacement requested", zap.String("bookingID", id), zap.String("requestID", req.ID))
	return &req, nil
}

func (s *DefaultBookingStore) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := s.Repo.LoadBookings(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(bookings, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	b := bookings[i]
	return &b, nil
}

// ListBookings returns the user's bookings, oldest first. An empty userID lists all of them.
func (s *DefaultBookingStore) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.LoadBookings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if userID == "" || b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *DefaultBookingStore) ListReplacementRequests(ctx context.Context, userID string) ([]models.ReplacementRequest, error) {
	requests, err := s.Repo.LoadReplacementRequests(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ReplacementRequest, 0, len(requests))
	for _, r := range requests {
		if userID == "" || r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
