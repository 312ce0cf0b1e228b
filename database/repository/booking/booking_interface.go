package bookingRepo

import (
	"context"

	"hiredaily/models"
)

// StatusChange is a compare-and-set on a booking's status. Exactly one of
// CustomerID or WorkerID scopes the change to the owning party; From lists
// the statuses the booking may currently be in.
type StatusChange struct {
	BookingID  string
	CustomerID string
	WorkerID   string
	From       []models.BookingStatus
	To         models.BookingStatus
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking after recomputing its total cost.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// List returns one page of bookings matching filter and the total match count.
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int64, error)
	// UpdateStatus applies change only if the booking is still in one of change.From.
	// It returns database.ErrNoMatch otherwise.
	UpdateStatus(ctx context.Context, change StatusChange) (*models.Booking, error)
	// SetRating attaches rating to a completed, unrated booking owned by customerID.
	// It returns database.ErrNoMatch otherwise.
	SetRating(ctx context.Context, id, customerID string, rating models.BookingRating) (*models.Booking, error)
	// RatedScores returns the score of every rated booking of the worker.
	RatedScores(ctx context.Context, workerID string) ([]int, error)
	// MarkPaid sets paymentStatus=paid and advances a pending booking to confirmed
	// in one atomic write, returning the updated booking.
	MarkPaid(ctx context.Context, id string) (*models.Booking, error)
}
