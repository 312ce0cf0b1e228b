package payment

import (
	"context"

	bookingRepo "hiredaily/database/repository/booking"
	workerRepo "hiredaily/database/repository/worker"
	"hiredaily/models"
	"hiredaily/utils"
)

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, customerID, bookingID string) (*models.CheckoutSession, error)
	ConfirmPayment(ctx context.Context, sessionID, bookingID string) (*models.PaymentConfirmation, error)
	GetPaymentStatus(ctx context.Context, customerID, bookingID string) (*models.PaymentStatusView, error)
}

// BookingViewer decorates a booking with its counterpart summaries.
type BookingViewer interface {
	View(ctx context.Context, b *models.Booking) *models.BookingView
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Bookings    bookingRepo.BookingRepository
	Workers     workerRepo.WorkerRepository
	Gateway     Gateway
	Viewer      BookingViewer
	Currency    string
	FrontendURL string
}

var (
	ErrBookingNotFound   = utils.NewNotFound("Booking")
	ErrAlreadyPaid       = utils.NewConflict(utils.CodeAlreadyPaid, "Booking is already paid")
	ErrPaymentIncomplete = utils.NewConflict(utils.CodePaymentIncomplete, "Payment not completed")
	ErrSessionMismatch   = utils.NewConflict(utils.CodePaymentIncomplete, "Payment session does not belong to this booking")
)

func NewPaymentService(bookings bookingRepo.BookingRepository, workers workerRepo.WorkerRepository, gateway Gateway, viewer BookingViewer, currency, frontendURL string) *DefaultPaymentService {
	return &DefaultPaymentService{
		Bookings:    bookings,
		Workers:     workers,
		Gateway:     gateway,
		Viewer:      viewer,
		Currency:    currency,
		FrontendURL: frontendURL,
	}
}
