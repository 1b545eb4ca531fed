package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	bookingRepo "haviaa/database/repository/booking"
	kvRepo "haviaa/database/repository/kv"
	lockRepo "haviaa/database/repository/lock"
	"haviaa/models"
	"haviaa/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, enforceSingleActive bool) (*DefaultBookingStore, *bookingRepo.KVBookingRepo) {
	t.Helper()
	repo := bookingRepo.NewKVBookingRepo(kvRepo.NewMemoryStore())
	store := NewBookingStore(repo, lockRepo.NewLocalLocker(), zaptest.NewLogger(t), enforceSingleActive)
	store.Now = func() time.Time { return fixedNow }
	return store, repo
}

func draft(userID, slot string) models.BookingDraft {
	return models.BookingDraft{
		MaidID:          "1",
		UserID:          userID,
		Duration:        3,
		DailyHours:      models.TierFourHours,
		TimeSlot:        slot,
		StartDate:       "2025-03-13",
		TotalAmount:     45000,
		AdvanceAmount:   13500,
		RemainingAmount: 31500,
		AdvancePaid:     true,
	}
}

func TestAvailabilityHelpers(t *testing.T) {
	bookings := []models.Booking{
		{ID: "a", TimeSlot: "9:00 AM - 11:00 AM", Status: models.BookingStatusActive},
		{ID: "b", TimeSlot: "2:00 PM - 4:00 PM", Status: models.BookingStatusCancelled},
		{ID: "c", TimeSlot: "3:00 PM - 5:00 PM", Status: models.BookingStatusCompleted},
	}

	assert.False(t, isSlotAvailable(bookings, "9:00 AM - 11:00 AM"))
	assert.True(t, isSlotAvailable(bookings, "2:00 PM - 4:00 PM"), "a cancelled booking frees its slot")
	assert.True(t, isSlotAvailable(bookings, "3:00 PM - 5:00 PM"), "a completed booking frees its slot")
	assert.True(t, isSlotAvailable(nil, "8:00 AM - 10:00 AM"))

	want := []string{
		"8:00 AM - 10:00 AM",
		"10:00 AM - 12:00 PM",
		"11:00 AM - 1:00 PM",
		"2:00 PM - 4:00 PM",
		"3:00 PM - 5:00 PM",
	}
	assert.Equal(t, want, availableSlots(bookings, models.TimeSlots))
	assert.Equal(t, models.TimeSlots, availableSlots(nil, models.TimeSlots))
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, true)

	b, err := store.CreateBooking(ctx, draft("user-1", "9:00 AM - 11:00 AM"))
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingStatusActive, b.Status)
	assert.Equal(t, int64(45000), b.TotalAmount)
	assert.True(t, b.AdvancePaid)
	assert.Equal(t, fixedNow, b.CreatedAt)

	ok, err := store.IsSlotAvailable(ctx, "9:00 AM - 11:00 AM")
	require.NoError(t, err)
	assert.False(t, ok)

	slots, err := store.ListAvailableSlots(ctx, models.TimeSlots)
	require.NoError(t, err)
	assert.Len(t, slots, len(models.TimeSlots)-1)
	assert.NotContains(t, slots, "9:00 AM - 11:00 AM")

	_, err = store.CreateBooking(ctx, draft("user-2", "9:00 AM - 11:00 AM"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.True(t, utils.IsKind(err, utils.KindSlotUnavailable))

	all, err := store.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1, "a rejected create must not append")
}

func TestCreateBookingRequiresFields(t *testing.T) {
	store, _ := newTestStore(t, true)
	d := draft("user-1", "")
	_, err := store.CreateBooking(context.Background(), d)
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestCreateBookingRejectsBadDurationAndTier(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t, true)

	for _, months := range []int{0, -3} {
		d := draft("user-1", "9:00 AM - 11:00 AM")
		d.Duration = months
		_, err := store.CreateBooking(ctx, d)
		assert.ErrorIs(t, err, ErrInvalidBooking, "duration=%d", months)
	}

	for _, tier := range []models.HoursTier{0, 3, 8} {
		d := draft("user-1", "9:00 AM - 11:00 AM")
		d.DailyHours = tier
		_, err := store.CreateBooking(ctx, d)
		assert.ErrorIs(t, err, ErrInvalidBooking, "tier=%d", tier)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	}

	all, err := repo.LoadBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateBookingSingleActivePerUser(t *testing.T) {
	ctx := context.Background()

	store, _ := newTestStore(t, true)
	_, err := store.CreateBooking(ctx, draft("user-1", "8:00 AM - 10:00 AM"))
	require.NoError(t, err)
	_, err = store.CreateBooking(ctx, draft("user-1", "2:00 PM - 4:00 PM"))
	assert.ErrorIs(t, err, ErrActiveBookingExists)

	relaxed, _ := newTestStore(t, false)
	_, err = relaxed.CreateBooking(ctx, draft("user-1", "8:00 AM - 10:00 AM"))
	require.NoError(t, err)
	_, err = relaxed.CreateBooking(ctx, draft("user-1", "2:00 PM - 4:00 PM"))
	assert.NoError(t, err)
}

func TestConcurrentCreateOnSameSlot(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, false)

	const writers = 25
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.CreateBooking(ctx, draft(fmt.Sprintf("user-%d", i), "10:00 AM - 12:00 PM"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if utils.IsKind(err, utils.KindSlotUnavailable) {
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, writers-1, conflicts)

	all, err := store.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, true)

	b, err := store.CreateBooking(ctx, draft("user-1", "9:00 AM - 11:00 AM"))
	require.NoError(t, err)

	_, err = store.CancelBooking(ctx, b.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidBooking)

	cancelled, err := store.CancelBooking(ctx, b.ID, "Moving to another city")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, "Moving to another city", cancelled.CancelReason)

	ok, err := store.IsSlotAvailable(ctx, "9:00 AM - 11:00 AM")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.CancelBooking(ctx, b.ID, "again")
	assert.ErrorIs(t, err, ErrAlreadyTerminal)

	_, err = store.CancelBooking(ctx, "missing", "reason")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// the slot can be booked again by someone else, and the user may book again
	_, err = store.CreateBooking(ctx, draft("user-1", "9:00 AM - 11:00 AM"))
	assert.NoError(t, err)
}

func TestCompleteBooking(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, true)

	b, err := store.CreateBooking(ctx, draft("user-1", "11:00 AM - 1:00 PM"))
	require.NoError(t, err)

	done, err := store.CompleteBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, done.Status)

	_, err = store.CancelBooking(ctx, b.ID, "too late")
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
	_, err = store.CompleteBooking(ctx, b.ID)
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
}

func TestReplaceBookingLeavesBookingUnchanged(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, true)

	b, err := store.CreateBooking(ctx, draft("user-1", "3:00 PM - 5:00 PM"))
	require.NoError(t, err)

	req, err := store.ReplaceBooking(ctx, b.ID, " not punctual ")
	require.NoError(t, err)
	assert.Equal(t, b.ID, req.BookingID)
	assert.Equal(t, "user-1", req.UserID)
	assert.Equal(t, "1", req.MaidID)
	assert.Equal(t, "not punctual", req.Note)
	assert.Equal(t, models.ReplacementPendingReview, req.Status)
	assert.Equal(t, fixedNow.Add(24*time.Hour), req.ReviewBy)

	after, err := store.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, *b, *after)

	requests, err := store.ListReplacementRequests(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	others, err := store.ListReplacementRequests(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = store.ReplaceBooking(ctx, "missing", "")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = store.CancelBooking(ctx, b.ID, "done")
	require.NoError(t, err)
	_, err = store.ReplaceBooking(ctx, b.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
}

func TestListBookingsFiltersByUser(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, true)

	_, err := store.CreateBooking(ctx, draft("user-1", "8:00 AM - 10:00 AM"))
	require.NoError(t, err)
	_, err = store.CreateBooking(ctx, draft("user-2", "9:00 AM - 11:00 AM"))
	require.NoError(t, err)

	mine, err := store.ListBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "8:00 AM - 10:00 AM", mine[0].TimeSlot)

	none, err := store.ListBookings(ctx, "user-3")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStorePersistsThroughRepository(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t, true)

	b, err := store.CreateBooking(ctx, draft("user-1", "8:00 AM - 10:00 AM"))
	require.NoError(t, err)

	// a second store over the same repository sees the booking
	other := NewBookingStore(repo, lockRepo.NewLocalLocker(), zaptest.NewLogger(t), true)
	got, err := other.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestLockFailureIsTimeout(t *testing.T) {
	store, _ := newTestStore(t, true)
	ctx, cancel := context.WithCancel(context.Background())

	unlock, err := store.Locker.Lock(context.Background(), utils.BookingsKey)
	require.NoError(t, err)
	defer unlock()

	cancel()
	_, err = store.CreateBooking(ctx, draft("user-1", "8:00 AM - 10:00 AM"))
	assert.ErrorIs(t, err, ErrStoreBusy)
	assert.True(t, utils.IsKind(err, utils.KindTimeout))
}
