package handlers

import (
	"net/http"
	"strconv"

	"staywise/models"
	"staywise/nav"
	"staywise/services/checkinout"
	"staywise/services/stays"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle and dashboard reads.
type BookingHandler struct {
	Lifecycle checkinout.BookingLifecycleManager
	Stays     stays.StaysService
	Nav       *nav.Recorder
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(lifecycle checkinout.BookingLifecycleManager, staysSvc stays.StaysService, recorder *nav.Recorder) *BookingHandler {
	return &BookingHandler{Lifecycle: lifecycle, Stays: staysSvc, Nav: recorder}
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return 0, false
	}
	return id, true
}

// CheckInHandler transitions a booking to checked-in.
func (h *BookingHandler) CheckInHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var extras models.BookingExtras
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&extras); err != nil {
			logger.Error("Invalid check-in request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	}

	booking, err := h.Lifecycle.CheckIn(c.Request.Context(), id, extras)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to check in booking"})
		return
	}
	c.JSON(http.StatusOK, redirect(h.Nav, gin.H{"booking": booking}))
}

// CheckOutHandler transitions a booking to checked-out.
func (h *BookingHandler) CheckOutHandler(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.Lifecycle.CheckOut(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to check out booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GetBookingHandler serves one booking's detail entry through the cache.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.Stays.Booking(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// lastDays parses the dashboard window from the query string, matching the
// UI's "?last=N" parameter.
func lastDays(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("last"))
	if err != nil || n <= 0 {
		return stays.DefaultWindowDays
	}
	return n
}

// RecentBookingsHandler lists bookings created within the dashboard window.
func (h *BookingHandler) RecentBookingsHandler(c *gin.Context) {
	bookings, err := h.Stays.RecentBookings(c.Request.Context(), lastDays(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load recent bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// RecentStaysHandler lists confirmed stays within the dashboard window.
func (h *BookingHandler) RecentStaysHandler(c *gin.Context) {
	confirmed, err := h.Stays.RecentStays(c.Request.Context(), lastDays(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load recent stays"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stays": confirmed, "numDays": lastDays(c)})
}

// PendingHandler reports whether a booking mutation is in flight so the UI
// can disable its triggers.
func (h *BookingHandler) PendingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isPending": h.Lifecycle.IsPending()})
}
