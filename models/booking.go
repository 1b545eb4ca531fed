package models

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsTerminal reports whether no further transition can leave this status.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// HoursTier is the daily-hours category of a booking.
type HoursTier int

const (
	TierTwoHours  HoursTier = 2
	TierFourHours HoursTier = 4
)

// Booking is a hire of one maid into one daily time slot.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	MaidID          string        `bson:"maidId" json:"maidId"`
	UserID          string        `bson:"userId" json:"userId"`
	Duration        int           `bson:"duration" json:"duration"`     // months
	DailyHours      HoursTier     `bson:"dailyHours" json:"dailyHours"` // 2 or 4
	TimeSlot        string        `bson:"timeSlot" json:"timeSlot"`
	StartDate       string        `bson:"startDate" json:"startDate"` // "YYYY-MM-DD"
	TotalAmount     int64         `bson:"totalAmount" json:"totalAmount"`
	AdvanceAmount   int64         `bson:"advanceAmount" json:"advanceAmount"`
	RemainingAmount int64         `bson:"remainingAmount" json:"remainingAmount"`
	Status          BookingStatus `bson:"status" json:"status"`
	AdvancePaid     bool          `bson:"advancePaid" json:"advancePaid"`
	CancelReason    string        `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingDraft is everything needed to create a booking; the store assigns the rest.
type BookingDraft struct {
	MaidID          string
	UserID          string
	Duration        int
	DailyHours      HoursTier
	TimeSlot        string
	StartDate       string
	TotalAmount     int64
	AdvanceAmount   int64
	RemainingAmount int64
	AdvancePaid     bool
}

type ReplacementStatus string

const ReplacementPendingReview ReplacementStatus = "pending_review"

// ReplacementRequest asks staff to swap the maid on an active booking.
// Filing one never changes the booking itself.
type ReplacementRequest struct {
	ID        string            `bson:"id" json:"id"`
	BookingID string            `bson:"bookingId" json:"bookingId"`
	UserID    string            `bson:"userId" json:"userId"`
	MaidID    string            `bson:"maidId" json:"maidId"`
	Note      string            `bson:"note,omitempty" json:"note,omitempty"`
	Status    ReplacementStatus `bson:"status" json:"status"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	ReviewBy  time.Time         `bson:"reviewBy" json:"reviewBy"`
}

// TimeSlots are the bookable daily service windows, in display order.
var TimeSlots = []string{
	"8:00 AM - 10:00 AM",
	"9:00 AM - 11:00 AM",
	"10:00 AM - 12:00 PM",
	"11:00 AM - 1:00 PM",
	"2:00 PM - 4:00 PM",
	"3:00 PM - 5:00 PM",
}

// DurationOptions are the contract lengths, in months, offered to clients.
var DurationOptions = []int{1, 2, 3, 4, 5, 6}

// IsKnownSlot reports whether slot is one of TimeSlots.
func IsKnownSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
