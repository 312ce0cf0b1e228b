package repository

import (
	"context"
	"time"

	accountRepo "hiredaily/database/repository/account"
	bookingRepo "hiredaily/database/repository/booking"
	customerRepo "hiredaily/database/repository/customer"
	"hiredaily/database/repository/memory"
	workerRepo "hiredaily/database/repository/worker"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Re-export the repository interfaces.
type (
	CustomerRepository = customerRepo.CustomerRepository
	WorkerRepository   = workerRepo.WorkerRepository
	BookingRepository  = bookingRepo.BookingRepository
	EmailRegistry      = accountRepo.EmailRegistry
)

// Repositories is the full set of stores the services depend on.
type Repositories struct {
	Customers CustomerRepository
	Workers   WorkerRepository
	Bookings  BookingRepository
	Emails    EmailRegistry
}

// NewMongoRepositories builds every repository on db and ensures their indexes.
func NewMongoRepositories(ctx context.Context, db *mongo.Database, logger *zap.Logger) Repositories {
	return Repositories{
		Customers: customerRepo.NewMongoCustomerRepo(ctx, db, logger),
		Workers:   workerRepo.NewMongoWorkerRepo(ctx, db, logger),
		Bookings:  bookingRepo.NewMongoBookingRepo(ctx, db, logger),
		Emails:    accountRepo.NewMongoEmailRegistry(ctx, db, logger),
	}
}

// NewMemoryRepositories builds process-local repositories sharing one store.
func NewMemoryRepositories() Repositories {
	store := memory.NewStore()
	return Repositories{
		Customers: store.Customers(),
		Workers:   store.Workers(),
		Bookings:  store.Bookings(),
		Emails:    store.Emails(),
	}
}

// WithWorkerCache fronts the worker repository with a Redis read-through cache.
func (r Repositories) WithWorkerCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) Repositories {
	r.Workers = workerRepo.NewCachedRepo(r.Workers, client, ttl, logger)
	return r
}
