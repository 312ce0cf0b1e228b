package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"hiredaily/database"
	bookingRepo "hiredaily/database/repository/booking"
	"hiredaily/models"
)

type bookingRecord struct {
	models.Booking
}

func (b bookingRecord) copy() *models.Booking {
	out := b.Booking
	if b.Rating != nil {
		r := *b.Rating
		out.Rating = &r
	}
	return &out
}

// BookingRepo implements bookingRepo.BookingRepository.
type BookingRepo struct {
	s *Store
}

func (r *BookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[booking.ID]; ok {
		return fmt.Errorf("booking id %s: %w", booking.ID, database.ErrDuplicate)
	}
	now := time.Now()
	booking.ComputeTotalCost()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.s.bookings[booking.ID] = bookingRecord{*bookingRecord{*booking}.copy()}
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.bookings[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return rec.copy(), nil
}

func (r *BookingRepo) List(_ context.Context, filter models.BookingFilter) ([]models.Booking, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found []models.Booking
	for _, rec := range r.s.bookings {
		if filter.CustomerID != "" && rec.CustomerID != filter.CustomerID {
			continue
		}
		if filter.WorkerID != "" && rec.WorkerID != filter.WorkerID {
			continue
		}
		if filter.Status != "" && string(rec.Status) != filter.Status {
			continue
		}
		found = append(found, *rec.copy())
	}
	ascending := filter.WorkerID != "" && filter.CustomerID == ""
	sort.SliceStable(found, func(i, j int) bool {
		if ascending {
			return found[i].ScheduledDate.Before(found[j].ScheduledDate)
		}
		return found[i].ScheduledDate.After(found[j].ScheduledDate)
	})
	return paginate(found, filter.Page), int64(len(found)), nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, change bookingRepo.StatusChange) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.bookings[change.BookingID]
	if !ok ||
		(change.CustomerID != "" && rec.CustomerID != change.CustomerID) ||
		(change.WorkerID != "" && rec.WorkerID != change.WorkerID) ||
		!slices.Contains(change.From, rec.Status) {
		return nil, database.ErrNoMatch
	}
	rec.Status = change.To
	rec.UpdatedAt = time.Now()
	r.s.bookings[rec.ID] = rec
	return rec.copy(), nil
}

func (r *BookingRepo) SetRating(_ context.Context, id, customerID string, rating models.BookingRating) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.bookings[id]
	if !ok || rec.CustomerID != customerID || rec.Status != models.StatusCompleted || rec.IsRated() {
		return nil, database.ErrNoMatch
	}
	rec.Rating = &rating
	rec.UpdatedAt = time.Now()
	r.s.bookings[id] = rec
	return rec.copy(), nil
}

func (r *BookingRepo) RatedScores(_ context.Context, workerID string) ([]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var scores []int
	for _, rec := range r.s.bookings {
		if rec.WorkerID == workerID && rec.IsRated() {
			scores = append(scores, rec.Rating.Score)
		}
	}
	return scores, nil
}

func (r *BookingRepo) MarkPaid(_ context.Context, id string) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, database.ErrNotFound)
	}
	rec.PaymentStatus = models.PaymentPaid
	if rec.Status == models.StatusPending {
		rec.Status = models.StatusConfirmed
	}
	rec.UpdatedAt = time.Now()
	r.s.bookings[id] = rec
	return rec.copy(), nil
}
