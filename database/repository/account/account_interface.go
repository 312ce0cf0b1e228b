package accountRepo

import (
	"context"

	"hiredaily/models"
)

// EmailRegistry reserves an email for exactly one account across customers
// and workers. Each account collection only indexes its own kind.
type EmailRegistry interface {
	// Claim reserves email for the account. It fails with database.ErrDuplicate
	// when any account already holds it.
	Claim(ctx context.Context, email string, kind models.Kind, accountID string) error
	// Release drops a claim whose account was never created.
	Release(ctx context.Context, email string) error
}
