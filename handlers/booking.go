package handlers

import (
	"net/http"

	"haviaa/models"
	"haviaa/services/booking"
	"haviaa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves availability, quotes and the booking lifecycle.
type BookingHandler struct {
	Store  booking.BookingStore
	Hire   booking.HireService
	Logger *zap.Logger
}

func NewBookingHandler(store booking.BookingStore, hire booking.HireService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Store: store, Hire: hire, Logger: logger}
}

// GetSlotsHandler handles GET /api/slots.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	available, err := h.Store.ListAvailableSlots(c.Request.Context(), models.TimeSlots)
	if err != nil {
		utils.RespondError(c, "Failed to load availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": models.TimeSlots, "available": available})
}

type quoteQuery struct {
	MaidID     string `form:"maidId" binding:"required"`
	Duration   int    `form:"duration" binding:"required"`
	DailyHours int    `form:"dailyHours" binding:"required"`
}

// GetQuoteHandler handles GET /api/pricing/quote.
func (h *BookingHandler) GetQuoteHandler(c *gin.Context) {
	var q quoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quote request", err.Error())
		return
	}

	quote, err := h.Hire.Quote(q.MaidID, q.Duration, models.HoursTier(q.DailyHours))
	if err != nil {
		utils.RespondError(c, "Failed to compute quote", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote, "startDate": quote.StartDateString()})
}

// ConfirmBooking handles POST /api/bookings: the advance is taken and the maid is booked.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req booking.HireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	b, err := h.Hire.ConfirmHire(c.Request.Context(), *usr, req)
	if err != nil {
		h.Logger.Info("ConfirmBooking: hire rejected",
			zap.String("userID", usr.ID),
			zap.String("maidID", req.MaidID),
			zap.Error(err))
		utils.RespondError(c, "Failed to confirm booking", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	ctx := c.Request.Context()

	bookings, err := h.Store.ListBookings(ctx, usr.ID)
	if err != nil {
		utils.RespondError(c, "Failed to load bookings", err)
		return
	}
	replacements, err := h.Store.ListReplacementRequests(ctx, usr.ID)
	if err != nil {
		utils.RespondError(c, "Failed to load replacement requests", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "replacementRequests": replacements})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, ok := h.ownedBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, b)
}

type cancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A cancellation reason is required", err.Error())
		return
	}
	b, ok := h.ownedBooking(c)
	if !ok {
		return
	}

	cancelled, err := h.Store.CancelBooking(c.Request.Context(), b.ID, req.Reason)
	if err != nil {
		utils.RespondError(c, "Failed to cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

type replaceRequest struct {
	Note string `json:"note"`
}

// ReplaceBookingHandler handles POST /api/bookings/:id/replace.
func (h *BookingHandler) ReplaceBookingHandler(c *gin.Context) {
	var req replaceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid replacement request", err.Error())
			return
		}
	}
	b, ok := h.ownedBooking(c)
	if !ok {
		return
	}

	request, err := h.Store.ReplaceBooking(c.Request.Context(), b.ID, req.Note)
	if err != nil {
		utils.RespondError(c, "Failed to request replacement", err)
		return
	}
	c.JSON(http.StatusAccepted, request)
}

// CompleteBookingHandler handles POST /api/bookings/:id/complete.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	b, ok := h.ownedBooking(c)
	if !ok {
		return
	}

	completed, err := h.Store.CompleteBooking(c.Request.Context(), b.ID)
	if err != nil {
		utils.RespondError(c, "Failed to complete booking", err)
		return
	}
	c.JSON(http.StatusOK, completed)
}

// ownedBooking loads the :id booking and hides bookings of other users as not found.
func (h *BookingHandler) ownedBooking(c *gin.Context) (*models.Booking, bool) {
	usr, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return nil, false
	}

	b, err := h.Store.GetBooking(c.Request.Context(), c.Param("id"))
	if err == nil && b.UserID != usr.ID {
		err = booking.ErrBookingNotFound
	}
	if err != nil {
		utils.RespondError(c, "Booking not found", err)
		return nil, false
	}
	return b, true
}
