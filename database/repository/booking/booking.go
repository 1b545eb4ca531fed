package bookingRepo

import (
	"context"
	"fmt"

	kvRepo "haviaa/database/repository/kv"
	"haviaa/models"
	"haviaa/utils"
)

// BookingRepository loads and saves the whole booking list. Callers that
// read-modify-write must hold the bookings lock.
type BookingRepository interface {
	LoadBookings(ctx context.Context) ([]models.Booking, error)
	SaveBookings(ctx context.Context, bookings []models.Booking) error
	LoadReplacementRequests(ctx context.Context) ([]models.ReplacementRequest, error)
	SaveReplacementRequests(ctx context.Context, requests []models.ReplacementRequest) error
}

// KVBookingRepo stores bookings as one serialized list per key.
type KVBookingRepo struct {
	store kvRepo.KeyValueStore
}

func NewKVBookingRepo(store kvRepo.KeyValueStore) *KVBookingRepo {
	return &KVBookingRepo{store: store}
}

func (r *KVBookingRepo) LoadBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if _, err := kvRepo.GetJSON(ctx, r.store, utils.BookingsKey, &bookings); err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookings, nil
}

func (r *KVBookingRepo) SaveBookings(ctx context.Context, bookings []models.Booking) error {
	if err := kvRepo.SetJSON(ctx, r.store, utils.BookingsKey, bookings); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	return nil
}

func (r *KVBookingRepo) LoadReplacementRequests(ctx context.Context) ([]models.ReplacementRequest, error) {
	var requests []models.ReplacementRequest
	if _, err := kvRepo.GetJSON(ctx, r.store, utils.ReplacementsKey, &requests); err != nil {
		return nil, fmt.Errorf("failed to load replacement requests: %w", err)
	}
	return requests, nil
}

func (r *KVBookingRepo) SaveReplacementRequests(ctx context.Context, requests []models.ReplacementRequest) error {
	if err := kvRepo.SetJSON(ctx, r.store, utils.ReplacementsKey, requests); err != nil {
		return fmt.Errorf("failed to save replacement requests: %w", err)
	}
	return nil
}
