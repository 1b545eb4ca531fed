package handlers

import (
	"haviaa/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserSvc user.UserService

	// Auth endpoints
	SignupHandler gin.HandlerFunc
	LoginHandler  gin.HandlerFunc
	LogoutHandler gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler           gin.HandlerFunc
	UpdateProfileHandler        gin.HandlerFunc
	GetPreferenceOptionsHandler gin.HandlerFunc

	// Catalog endpoints
	ListMaidsHandler  gin.HandlerFunc
	GetMaidHandler    gin.HandlerFunc
	GetOptionsHandler gin.HandlerFunc

	// Availability and pricing
	GetSlotsHandler gin.HandlerFunc
	GetQuoteHandler gin.HandlerFunc

	// Booking endpoints
	ConfirmBooking         gin.HandlerFunc
	ListBookingsHandler    gin.HandlerFunc
	GetBookingHandler      gin.HandlerFunc
	CancelBookingHandler   gin.HandlerFunc
	ReplaceBookingHandler  gin.HandlerFunc
	CompleteBookingHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
	MarkReadHandler          gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler method into the bundle.
func NewHandlerBundle(userH *UserHandler, catalogH *CatalogHandler, bookingH *BookingHandler, notifH *NotificationHandler) *HandlerBundle {
	return &HandlerBundle{
		UserSvc: userH.UserSvc,

		SignupHandler: userH.SignupHandler,
		LoginHandler:  userH.LoginHandler,
		LogoutHandler: userH.LogoutHandler,

		GetProfileHandler:           userH.GetProfileHandler,
		UpdateProfileHandler:        userH.UpdateProfileHandler,
		GetPreferenceOptionsHandler: userH.GetPreferenceOptionsHandler,

		ListMaidsHandler:  catalogH.ListMaidsHandler,
		GetMaidHandler:    catalogH.GetMaidHandler,
		GetOptionsHandler: catalogH.GetOptionsHandler,

		GetSlotsHandler: bookingH.GetSlotsHandler,
		GetQuoteHandler: bookingH.GetQuoteHandler,

		ConfirmBooking:         bookingH.ConfirmBooking,
		ListBookingsHandler:    bookingH.ListBookingsHandler,
		GetBookingHandler:      bookingH.GetBookingHandler,
		CancelBookingHandler:   bookingH.CancelBookingHandler,
		ReplaceBookingHandler:  bookingH.ReplaceBookingHandler,
		CompleteBookingHandler: bookingH.CompleteBookingHandler,

		ListNotificationsHandler: notifH.ListNotificationsHandler,
		MarkReadHandler:          notifH.MarkReadHandler,

		HealthHandler: HealthHandler,
	}
}
