package booking

import (
	"context"
	"errors"

	"hiredaily/database"
	bookingRepo "hiredaily/database/repository/booking"
	"hiredaily/models"
	"hiredaily/utils"

	"go.uber.org/zap"
)

// UpdateStatus applies a worker-driven transition on one of the worker's bookings.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, workerID, bookingID string, to models.BookingStatus) (*models.BookingView, error) {
	if !models.IsBookingStatus(string(to)) {
		return nil, utils.NewValidationError([]utils.FieldError{
			{Field: "status", Message: "status is not a valid booking status"},
		})
	}
	current, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.WorkerID != workerID {
		return nil, ErrBookingNotFound
	}
	if !CanWorkerTransition(current.Status, to) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingRepo.StatusChange{
		BookingID: bookingID,
		WorkerID:  workerID,
		From:      []models.BookingStatus{current.Status},
		To:        to,
	})
	if errors.Is(err, database.ErrNoMatch) {
		// The status moved under us; whatever it is now, this transition no longer applies.
		return nil, ErrInvalidTransition
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingId", bookingID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(to)),
	)
	return s.view(ctx, updated, false, true), nil
}

// CancelBooking lets the owning customer cancel any non-terminal booking.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, customerID, bookingID string) (*models.BookingView, error) {
	current, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.CustomerID != customerID {
		return nil, ErrBookingNotFound
	}
	if current.Status.IsFinal() {
		return nil, ErrAlreadyFinal
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingRepo.StatusChange{
		BookingID:  bookingID,
		CustomerID: customerID,
		From:       customerCancellable,
		To:         models.StatusCancelled,
	})
	if errors.Is(err, database.ErrNoMatch) {
		return nil, ErrAlreadyFinal
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}

	utils.GetLogger().Info("booking cancelled by customer",
		zap.String("bookingId", bookingID),
		zap.String("from", string(current.Status)),
	)
	return s.view(ctx, updated, true, false), nil
}
