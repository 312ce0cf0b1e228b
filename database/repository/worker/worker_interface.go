package workerRepo

import (
	"context"

	"hiredaily/models"
)

// WorkerRepository defines methods for worker data access.
type WorkerRepository interface {
	// Create inserts a new worker record.
	Create(ctx context.Context, worker *models.Worker) error
	// GetByID retrieves a worker by its unique ID, without the password hash.
	GetByID(ctx context.Context, id string) (*models.Worker, error)
	// GetByIDs retrieves every worker whose ID is listed.
	GetByIDs(ctx context.Context, ids []string) ([]models.Worker, error)
	// GetByEmail retrieves a worker, password hash included, by lower-cased email.
	GetByEmail(ctx context.Context, email string) (*models.Worker, error)
	// ExistsByEmail reports whether the email is taken in this collection.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateProfile writes the self-service profile fields.
	UpdateProfile(ctx context.Context, worker *models.Worker) error
	// SetRating replaces the aggregate rating of a worker.
	SetRating(ctx context.Context, id string, rating models.Rating) error
	// Search returns one page of available workers matching criteria and the total match count.
	Search(ctx context.Context, criteria models.WorkerSearchCriteria) ([]models.Worker, int64, error)
}
