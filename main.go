package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hiredaily/config"
	"hiredaily/database"
	"hiredaily/database/repository"
	"hiredaily/handlers"
	"hiredaily/middleware"
	"hiredaily/routes"
	"hiredaily/services/auth"
	"hiredaily/services/booking"
	"hiredaily/services/customer"
	"hiredaily/services/payment"
	"hiredaily/services/worker"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const devJWTSecret = "hiredaily-development-secret"

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.GetLogger().Fatal("main: invalid configuration", zap.Error(err))
	}
	utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	probes := map[string]utils.Pinger{}

	// repositories.
	var repos repository.Repositories
	switch cfg.Store {
	case "memory":
		logger.Warn("main: using in-memory store; data is lost on restart")
		repos = repository.NewMemoryRepositories()
	default:
		client, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("main: MongoDB disconnect failed", zap.Error(err))
			}
		}()
		probes["mongo"] = utils.PingFunc(func(ctx context.Context) error { return client.Ping(ctx, nil) })
		repos = repository.NewMongoRepositories(ctx, client.Database(cfg.DatabaseName), logger)
		logger.Info("main: connected to MongoDB", zap.String("database", cfg.DatabaseName))
	}

	if cfg.RedisAddr != "" {
		cache, err := utils.NewCacheClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
		if err != nil {
			logger.Warn("main: worker cache disabled", zap.Error(err))
		} else {
			defer cache.Close()
			probes["redis"] = utils.PingFunc(func(ctx context.Context) error { return cache.Ping(ctx).Err() })
			repos = repos.WithWorkerCache(cache, cfg.WorkerCacheTTL, logger)
		}
	}

	secret := cfg.JWTSecret
	if secret == "" {
		logger.Warn("main: JWT_SECRET not set, using development secret")
		secret = devJWTSecret
	}
	if cfg.StripeKey == "" {
		logger.Warn("main: STRIPE_SECRET_KEY not set; checkout requests will fail")
	}

	// services.
	tokens := utils.NewTokenManager(secret, cfg.TokenTTL)
	authService := auth.NewAuthService(repos.Customers, repos.Workers, repos.Emails, tokens)
	bookingService := booking.NewBookingService(repos.Bookings, repos.Workers, repos.Customers)
	paymentService := payment.NewPaymentService(
		repos.Bookings,
		repos.Workers,
		payment.NewStripeGateway(cfg.StripeKey),
		bookingService,
		cfg.PaymentCurrency,
		cfg.FrontendURL,
	)

	monitor := utils.NewHealthMonitor(probes)
	monitor.Start(ctx, 30*time.Second)

	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Auth:              authService,
		Workers:           worker.NewWorkerService(repos.Workers),
		Customers:         customer.NewCustomerService(repos.Customers),
		Bookings:          bookingService,
		Payments:          paymentService,
		Health:            monitor,
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
