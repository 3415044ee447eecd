package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	bookingRepo "medisys/database/repository/booking"
	"medisys/models"
	"medisys/services/booking"
	"medisys/utils"
)

// BookingHandler exposes the booking-creation workflow.
type BookingHandler struct {
	Svc   booking.BookingService
	Cache *redis.Client
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, cache *redis.Client) *BookingHandler {
	return &BookingHandler{Svc: svc, Cache: cache}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bk, err := h.Svc.BookSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "slot already booked", "another booking holds this slot; pick a different one")
		case strings.Contains(err.Error(), "no longer available"), strings.Contains(err.Error(), "no bookable slot"):
			utils.JSONError(c, http.StatusConflict, "slot not available", err.Error())
		default:
			utils.JSONError(c, http.StatusBadRequest, "failed to create booking", err.Error())
		}
		return
	}

	invalidateAvailability(c.Request.Context(), h.Cache, bk)
	c.JSON(http.StatusCreated, bk)
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")

	bk, err := h.Svc.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to cancel booking", err.Error())
		return
	}

	invalidateAvailability(c.Request.Context(), h.Cache, bk)
	c.JSON(http.StatusOK, gin.H{
		"bookingId":  bk.ID,
		"status":     bk.Status,
		"canceledAt": time.Now(),
	})
}
