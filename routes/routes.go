package routes

import (
	"time"

	"hiredaily/handlers"
	"hiredaily/middleware"
	"hiredaily/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register-user", hb.RegisterUserHandler)
		authGroup.POST("/register-worker", hb.RegisterWorkerHandler)
		authGroup.POST("/login", hb.LoginHandler)

		authGroup.GET("/profile", middleware.JWTAuthMiddleware(hb.Auth), hb.ProfileHandler)
	}
}

// RegisterWorkerRoutes registers discovery and worker self-service endpoints.
func RegisterWorkerRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	workers := api.Group("/workers")
	{
		workers.GET("", hb.ListWorkersHandler)
		workers.GET("/skills", hb.GetSkillsHandler)

		// Worker-only routes.
		protected := workers.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.Auth), middleware.RequireKind(models.KindWorker))
		protected.PUT("/profile", hb.UpdateWorkerProfileHandler)
		protected.GET("/bookings", hb.ListWorkerBookingsHandler)
		protected.PUT("/bookings/:id/status", hb.UpdateBookingStatusHandler)

		workers.GET("/:id", hb.GetWorkerHandler)
	}
}

// RegisterUserRoutes registers customer profile endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	users := api.Group("/users")
	{
		users.Use(middleware.JWTAuthMiddleware(hb.Auth), middleware.RequireKind(models.KindCustomer))
		users.GET("/profile", hb.GetUserProfileHandler)
		users.PUT("/profile", hb.UpdateUserProfileHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints. Reading a single
// booking is open to its worker too.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := api.Group("/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware(hb.Auth))
		bookings.GET("/:id", hb.GetBookingHandler)

		customerOnly := bookings.Group("")
		customerOnly.Use(middleware.RequireKind(models.KindCustomer))
		customerOnly.POST("", hb.CreateBookingHandler)
		customerOnly.GET("", hb.ListBookingsHandler)
		customerOnly.PUT("/:id/cancel", hb.CancelBookingHandler)
		customerOnly.PUT("/:id/rate", hb.RateBookingHandler)
	}
}

// RegisterPaymentRoutes registers checkout endpoints.
func RegisterPaymentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	payments := api.Group("/payments")
	{
		payments.Use(middleware.JWTAuthMiddleware(hb.Auth))
		payments.POST("/success", hb.ConfirmPaymentHandler)

		customerOnly := payments.Group("")
		customerOnly.Use(middleware.RequireKind(models.KindCustomer))
		customerOnly.POST("/create-checkout-session", hb.CreateCheckoutSessionHandler)
		customerOnly.GET("/status/:bookingId", hb.PaymentStatusHandler)
	}
}

// RegisterHealthRoutes registers liveness endpoints outside the rate limit.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", handlers.RootHandler)
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(hb.MaxRequestsMin))
	RegisterAuthRoutes(api, hb)
	RegisterWorkerRoutes(api, hb)
	RegisterUserRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterPaymentRoutes(api, hb)
}
