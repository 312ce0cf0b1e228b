package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"hiredaily/database"
	"hiredaily/models"
	"hiredaily/utils"

	"go.uber.org/zap"
)

// AggregateRating computes a worker's rating from every rated booking.
// The average is rounded to one decimal place.
func AggregateRating(scores []int) models.Rating {
	if len(scores) == 0 {
		return models.Rating{}
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	mean := float64(sum) / float64(len(scores))
	return models.Rating{
		Average: math.Round(mean*10) / 10,
		Count:   len(scores),
	}
}

func (s *DefaultBookingService) RateBooking(ctx context.Context, customerID, bookingID string, req models.RatingRequest) (*models.BookingView, error) {
	current, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if current.CustomerID != customerID || current.Status != models.StatusCompleted {
		return nil, ErrBookingNotFound
	}
	if current.IsRated() {
		return nil, ErrAlreadyRated
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	rating := models.BookingRating{Score: req.Score, Review: req.Review, ReviewDate: time.Now()}
	updated, err := s.Bookings.SetRating(ctx, bookingID, customerID, rating)
	if errors.Is(err, database.ErrNoMatch) {
		// Lost a race with a concurrent rating.
		return nil, ErrAlreadyRated
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}

	if err := s.RecomputeWorkerRating(ctx, updated.WorkerID); err != nil {
		return nil, utils.NewInternal(err)
	}
	return s.view(ctx, updated, true, false), nil
}

// RecomputeWorkerRating rebuilds the worker aggregate from scratch. It is a
// read followed by a write; two concurrent recomputations may interleave,
// but the next one always converges.
func (s *DefaultBookingService) RecomputeWorkerRating(ctx context.Context, workerID string) error {
	scores, err := s.Bookings.RatedScores(ctx, workerID)
	if err != nil {
		return err
	}
	rating := AggregateRating(scores)
	if err := s.Workers.SetRating(ctx, workerID, rating); err != nil {
		return err
	}
	utils.GetLogger().Info("worker rating updated",
		zap.String("workerId", workerID),
		zap.Float64("average", rating.Average),
		zap.Int("count", rating.Count),
	)
	return nil
}
