package booking

import (
	"context"

	bookingRepo "hiredaily/database/repository/booking"
	customerRepo "hiredaily/database/repository/customer"
	workerRepo "hiredaily/database/repository/worker"
	"hiredaily/models"
	"hiredaily/utils"
)

// BookingService owns the booking state machine and rating aggregation.
type BookingService interface {
	CreateBooking(ctx context.Context, customer *models.Customer, req models.BookingRequest) (*models.BookingView, error)
	GetBooking(ctx context.Context, principal *models.Principal, id string) (*models.BookingView, error)
	ListCustomerBookings(ctx context.Context, customerID, status string, page models.Page) (*models.BookingList, error)
	ListWorkerBookings(ctx context.Context, workerID, status string, page models.Page) (*models.BookingList, error)

	// Status changes
	UpdateStatus(ctx context.Context, workerID, bookingID string, to models.BookingStatus) (*models.BookingView, error)
	CancelBooking(ctx context.Context, customerID, bookingID string) (*models.BookingView, error)

	RateBooking(ctx context.Context, customerID, bookingID string, req models.RatingRequest) (*models.BookingView, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Workers   workerRepo.WorkerRepository
	Customers customerRepo.CustomerRepository
}

func NewBookingService(bookings bookingRepo.BookingRepository, workers workerRepo.WorkerRepository, customers customerRepo.CustomerRepository) *DefaultBookingService {
	return &DefaultBookingService{Bookings: bookings, Workers: workers, Customers: customers}
}

var (
	ErrBookingNotFound   = utils.NewNotFound("Booking")
	ErrWorkerNotFound    = utils.NewNotFound("Worker")
	ErrWorkerUnavailable = utils.NewConflict(utils.CodeWorkerUnavailable, "Worker is not available")
	ErrSkillMismatch     = utils.NewConflict(utils.CodeSkillMismatch, "Worker does not provide this service")
	ErrInvalidTransition = utils.NewConflict(utils.CodeInvalidTransition, "Invalid status transition")
	ErrAlreadyFinal      = utils.NewConflict(utils.CodeAlreadyFinal, "Booking cannot be cancelled")
	ErrAlreadyRated      = utils.NewConflict(utils.CodeAlreadyRated, "Booking already rated")
)
