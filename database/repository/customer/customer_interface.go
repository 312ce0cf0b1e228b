package customerRepo

import (
	"context"

	"hiredaily/models"
)

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// Create inserts a new customer record.
	Create(ctx context.Context, customer *models.Customer) error
	// GetByID retrieves a customer by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	// GetByIDs retrieves every customer whose ID is listed.
	GetByIDs(ctx context.Context, ids []string) ([]models.Customer, error)
	// GetByEmail retrieves a customer, password hash included, by lower-cased email.
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	// ExistsByEmail reports whether the email is taken in this collection.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateProfile writes the self-service profile fields.
	UpdateProfile(ctx context.Context, customer *models.Customer) error
}
