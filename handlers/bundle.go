package handlers

import (
	"hiredaily/middleware"
	"hiredaily/services/auth"
	"hiredaily/services/booking"
	"hiredaily/services/customer"
	"hiredaily/services/payment"
	"hiredaily/services/worker"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth           middleware.Authenticator
	MaxRequestsMin int
	HealthHandler  gin.HandlerFunc

	// Auth endpoints
	RegisterUserHandler   gin.HandlerFunc
	RegisterWorkerHandler gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	ProfileHandler        gin.HandlerFunc

	// Worker endpoints
	ListWorkersHandler         gin.HandlerFunc
	GetWorkerHandler           gin.HandlerFunc
	UpdateWorkerProfileHandler gin.HandlerFunc
	ListWorkerBookingsHandler  gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	GetSkillsHandler           gin.HandlerFunc

	// User endpoints
	GetUserProfileHandler    gin.HandlerFunc
	UpdateUserProfileHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
	RateBookingHandler   gin.HandlerFunc

	// Payment endpoints
	CreateCheckoutSessionHandler gin.HandlerFunc
	ConfirmPaymentHandler        gin.HandlerFunc
	PaymentStatusHandler         gin.HandlerFunc
}

// Services are the dependencies the handlers are built from.
type Services struct {
	Auth      auth.AuthService
	Workers   worker.WorkerService
	Customers customer.CustomerService
	Bookings  booking.BookingService
	Payments  payment.PaymentService
	Health    *utils.HealthMonitor

	MaxRequestsPerMin int
}

// NewHandlerBundle assembles every endpoint handler.
func NewHandlerBundle(s Services) *HandlerBundle {
	authHandler := NewAuthHandler(s.Auth)
	workerHandler := NewWorkerHandler(s.Workers, s.Bookings)
	userHandler := NewUserHandler(s.Customers)
	bookingHandler := NewBookingHandler(s.Bookings)
	paymentHandler := NewPaymentHandler(s.Payments)

	return &HandlerBundle{
		Auth:           s.Auth,
		MaxRequestsMin: s.MaxRequestsPerMin,
		HealthHandler:  HealthHandler(s.Health),

		// Auth endpoints.
		RegisterUserHandler:   authHandler.RegisterUserHandler,
		RegisterWorkerHandler: authHandler.RegisterWorkerHandler,
		LoginHandler:          authHandler.LoginHandler,
		ProfileHandler:        authHandler.ProfileHandler,

		// Worker endpoints.
		ListWorkersHandler:         workerHandler.ListWorkersHandler,
		GetWorkerHandler:           workerHandler.GetWorkerHandler,
		UpdateWorkerProfileHandler: workerHandler.UpdateWorkerProfileHandler,
		ListWorkerBookingsHandler:  workerHandler.ListWorkerBookingsHandler,
		UpdateBookingStatusHandler: workerHandler.UpdateBookingStatusHandler,
		GetSkillsHandler:           workerHandler.GetSkillsHandler,

		// User endpoints.
		GetUserProfileHandler:    userHandler.GetUserProfileHandler,
		UpdateUserProfileHandler: userHandler.UpdateUserProfileHandler,

		// Booking endpoints.
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,
		RateBookingHandler:   bookingHandler.RateBookingHandler,

		// Payment endpoints.
		CreateCheckoutSessionHandler: paymentHandler.CreateCheckoutSessionHandler,
		ConfirmPaymentHandler:        paymentHandler.ConfirmPaymentHandler,
		PaymentStatusHandler:         paymentHandler.PaymentStatusHandler,
	}
}
