package handlers

import (
	"net/http"

	"hiredaily/models"
	"hiredaily/services/booking"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Svc.CreateBooking(c.Request.Context(), p.Customer, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	list, err := h.Svc.ListCustomerBookings(c.Request.Context(), p.ID(), c.Query("status"), pageQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetBookingHandler handles GET /api/bookings/:id for the customer or the worker.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	b, err := h.Svc.GetBooking(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	b, err := h.Svc.CancelBooking(c.Request.Context(), p.ID(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RateBookingHandler handles PUT /api/bookings/:id/rate.
func (h *BookingHandler) RateBookingHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req models.RatingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Svc.RateBooking(c.Request.Context(), p.ID(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
