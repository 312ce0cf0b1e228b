package handlers

import (
	"net/http"

	"hiredaily/services/payment"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Svc payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// CreateCheckoutSessionHandler handles POST /api/payments/create-checkout-session.
func (h *PaymentHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req struct {
		BookingID string `json:"bookingId"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if req.BookingID == "" {
		utils.RespondError(c, utils.NewValidationError([]utils.FieldError{
			{Field: "bookingId", Message: "bookingId is required"},
		}))
		return
	}
	s, err := h.Svc.CreateCheckoutSession(c.Request.Context(), p.ID(), req.BookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ConfirmPaymentHandler handles POST /api/payments/success.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId"`
		BookingID string `json:"bookingId"`
	}
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.ConfirmPayment(c.Request.Context(), req.SessionID, req.BookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PaymentStatusHandler handles GET /api/payments/status/:bookingId.
func (h *PaymentHandler) PaymentStatusHandler(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	v, err := h.Svc.GetPaymentStatus(c.Request.Context(), p.ID(), c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
