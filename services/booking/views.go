package booking

import (
	"context"

	"hiredaily/models"
	"hiredaily/utils"

	"go.uber.org/zap"
)

// View attaches counterpart summaries to a booking. Lookup failures leave
// the summary out rather than failing the request.
func (s *DefaultBookingService) View(ctx context.Context, b *models.Booking) *models.BookingView {
	return s.view(ctx, b, true, true)
}

func (s *DefaultBookingService) view(ctx context.Context, b *models.Booking, withWorker, withCustomer bool) *models.BookingView {
	views := s.views(ctx, []models.Booking{*b}, withWorker, withCustomer)
	return &views[0]
}

func (s *DefaultBookingService) views(ctx context.Context, bookings []models.Booking, withWorker, withCustomer bool) []models.BookingView {
	out := make([]models.BookingView, len(bookings))
	workerIDs := make([]string, 0, len(bookings))
	customerIDs := make([]string, 0, len(bookings))
	for i, b := range bookings {
		out[i] = models.BookingView{Booking: b}
		workerIDs = append(workerIDs, b.WorkerID)
		customerIDs = append(customerIDs, b.CustomerID)
	}
	if len(bookings) == 0 {
		return out
	}

	if withWorker {
		workers, err := s.Workers.GetByIDs(ctx, workerIDs)
		if err != nil {
			utils.GetLogger().Warn("failed to load worker summaries", zap.Error(err))
		}
		byID := make(map[string]*models.WorkerSummary, len(workers))
		for i := range workers {
			byID[workers[i].ID] = workers[i].Summary()
		}
		for i := range out {
			out[i].Worker = byID[out[i].WorkerID]
		}
	}
	if withCustomer {
		customers, err := s.Customers.GetByIDs(ctx, customerIDs)
		if err != nil {
			utils.GetLogger().Warn("failed to load customer summaries", zap.Error(err))
		}
		byID := make(map[string]*models.CustomerSummary, len(customers))
		for i := range customers {
			byID[customers[i].ID] = customers[i].Summary()
		}
		for i := range out {
			out[i].Customer = byID[out[i].CustomerID]
		}
	}
	return out
}
