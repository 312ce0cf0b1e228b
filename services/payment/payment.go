package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"hiredaily/database"
	"hiredaily/models"
	"hiredaily/utils"

	"go.uber.org/zap"
)

// ToMinorUnits converts an amount to the smallest currency unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *DefaultPaymentService) ownedBooking(ctx context.Context, customerID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if b.CustomerID != customerID {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *DefaultPaymentService) checkoutRequest(b *models.Booking, workerName string) models.CheckoutRequest {
	base := strings.TrimRight(s.FrontendURL, "/")
	return models.CheckoutRequest{
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		ProductName: fmt.Sprintf("%s Service by %s", b.ServiceType, workerName),
		Description: fmt.Sprintf("%g hours of %s service", b.EstimatedHours, b.ServiceType),
		Amount:      ToMinorUnits(b.TotalCost),
		Currency:    s.Currency,
		SuccessURL:  base + "/payment/success?session_id={CHECKOUT_SESSION_ID}&booking_id=" + b.ID,
		CancelURL:   base + "/dashboard",
	}
}

func (s *DefaultPaymentService) CreateCheckoutSession(ctx context.Context, customerID, bookingID string) (*models.CheckoutSession, error) {
	b, err := s.ownedBooking(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == models.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	workerName := "worker"
	if w, err := s.Workers.GetByID(ctx, b.WorkerID); err == nil {
		workerName = w.Name
	}

	checkout, err := s.Gateway.CreateCheckoutSession(ctx, s.checkoutRequest(b, workerName))
	if err != nil {
		// Gateway detail stays in the log.
		return nil, utils.NewInternal(fmt.Errorf("create checkout session for booking %s: %w", b.ID, err))
	}

	utils.GetLogger().Info("checkout session created",
		zap.String("bookingId", b.ID),
		zap.String("sessionId", checkout.SessionID),
	)
	return checkout, nil
}

// ConfirmPayment marks a booking paid once the gateway reports the session
// paid. A pending booking is confirmed in the same write.
func (s *DefaultPaymentService) ConfirmPayment(ctx context.Context, sessionID, bookingID string) (*models.PaymentConfirmation, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(bookingID) == "" {
		return nil, utils.NewValidationError([]utils.FieldError{
			{Field: "sessionId", Message: "sessionId and bookingId are required"},
		})
	}

	status, err := s.Gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, utils.NewInternal(fmt.Errorf("retrieve checkout session %s: %w", sessionID, err))
	}
	if !status.Paid {
		return nil, ErrPaymentIncomplete
	}
	if id, ok := status.Metadata[models.MetadataBookingID]; ok && id != bookingID {
		utils.GetLogger().Warn("checkout session booking mismatch",
			zap.String("sessionId", sessionID),
			zap.String("bookingId", bookingID),
			zap.String("sessionBookingId", id),
		)
		return nil, ErrSessionMismatch
	}

	b, err := s.Bookings.MarkPaid(ctx, bookingID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}

	utils.GetLogger().Info("payment confirmed",
		zap.String("bookingId", b.ID),
		zap.String("status", string(b.Status)),
	)
	return &models.PaymentConfirmation{
		Success: true,
		Booking: s.Viewer.View(ctx, b),
		Message: "Payment confirmed successfully",
	}, nil
}

func (s *DefaultPaymentService) GetPaymentStatus(ctx context.Context, customerID, bookingID string) (*models.PaymentStatusView, error) {
	b, err := s.ownedBooking(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}
	return &models.PaymentStatusView{
		PaymentStatus: b.PaymentStatus,
		TotalCost:     b.TotalCost,
		BookingStatus: b.Status,
	}, nil
}
