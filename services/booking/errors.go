package booking

import (
	"fmt"

	"haviaa/utils"
)

var (
	ErrSlotUnavailable     = utils.NewAppError(utils.KindSlotUnavailable, "time slot is already booked")
	ErrActiveBookingExists = utils.NewAppError(utils.KindActiveBookingExists, "user already has an active booking")
	ErrBookingNotFound     = utils.NewAppError(utils.KindNotFound, "booking not found")
	ErrAlreadyTerminal     = utils.NewAppError(utils.KindAlreadyTerminal, "booking is no longer active")
	ErrInvalidBooking      = utils.NewAppError(utils.KindValidation, "invalid booking request")
	ErrProfileIncomplete   = utils.NewAppError(utils.KindValidation, "complete your profile before hiring")
	ErrStoreBusy           = utils.NewAppError(utils.KindTimeout, "booking store is busy, try again")
)

// lockError reports a failed lock acquisition as a retryable Timeout.
func lockError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreBusy, err)
}
