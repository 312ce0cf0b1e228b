package booking

import (
	"context"
	"errors"

	"hiredaily/database"
	"hiredaily/models"
	"hiredaily/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) CreateBooking(ctx context.Context, customer *models.Customer, req models.BookingRequest) (*models.BookingView, error) {
	// Date format and the future-only rule are struct tags, so every
	// violation is reported together.
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	scheduled, _ := models.ParseScheduledDate(req.ScheduledDate)

	worker, err := s.Workers.GetByID(ctx, req.WorkerID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrWorkerNotFound
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if !worker.Availability.IsAvailable {
		return nil, ErrWorkerUnavailable
	}
	if !worker.HasSkill(req.ServiceType) {
		return nil, ErrSkillMismatch
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		CustomerID:     customer.ID,
		WorkerID:       worker.ID,
		ServiceType:    req.ServiceType,
		Description:    req.Description,
		ScheduledDate:  scheduled,
		ScheduledTime:  req.ScheduledTime,
		EstimatedHours: req.EstimatedHours,
		HourlyRate:     worker.HourlyRate,
		Address:        req.Address,
		Status:         models.StatusPending,
		PaymentStatus:  models.PaymentPending,
		Notes:          req.Notes,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, utils.NewInternal(err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("customerId", customer.ID),
		zap.String("workerId", worker.ID),
		zap.Float64("totalCost", booking.TotalCost),
	)
	return &models.BookingView{Booking: *booking, Worker: worker.Summary()}, nil
}

// GetBooking returns a booking to its customer or its worker. The principal id
// is only compared with the field of its own kind.
func (s *DefaultBookingService) GetBooking(ctx context.Context, principal *models.Principal, id string) (*models.BookingView, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	switch principal.Kind {
	case models.KindCustomer:
		if b.CustomerID != principal.ID() {
			return nil, ErrBookingNotFound
		}
	case models.KindWorker:
		if b.WorkerID != principal.ID() {
			return nil, ErrBookingNotFound
		}
	default:
		return nil, ErrBookingNotFound
	}
	return s.view(ctx, b, true, true), nil
}

func (s *DefaultBookingService) load(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return b, nil
}

func (s *DefaultBookingService) ListCustomerBookings(ctx context.Context, customerID, status string, page models.Page) (*models.BookingList, error) {
	return s.list(ctx, models.BookingFilter{CustomerID: customerID, Status: status, Page: page}, true, false)
}

func (s *DefaultBookingService) ListWorkerBookings(ctx context.Context, workerID, status string, page models.Page) (*models.BookingList, error) {
	return s.list(ctx, models.BookingFilter{WorkerID: workerID, Status: status, Page: page}, false, true)
}

func (s *DefaultBookingService) list(ctx context.Context, filter models.BookingFilter, withWorker, withCustomer bool) (*models.BookingList, error) {
	if filter.Status != "" && !models.IsBookingStatus(filter.Status) {
		return nil, utils.NewValidationError([]utils.FieldError{
			{Field: "status", Message: "status is not a valid booking status"},
		})
	}
	filter.Page = filter.Page.Normalize()

	bookings, total, err := s.Bookings.List(ctx, filter)
	if err != nil {
		return nil, utils.NewInternal(err)
	}

	views := s.views(ctx, bookings, withWorker, withCustomer)
	return &models.BookingList{
		Bookings:    views,
		Total:       total,
		TotalPages:  models.TotalPages(total, filter.Page.Limit),
		CurrentPage: filter.Page.Page,
	}, nil
}
