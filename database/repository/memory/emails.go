package memory

import (
	"context"
	"fmt"
	"strings"

	"hiredaily/database"
	"hiredaily/models"
)

// EmailRegistry implements accountRepo.EmailRegistry.
type EmailRegistry struct {
	s *Store
}

func (r *EmailRegistry) Claim(_ context.Context, email string, _ models.Kind, accountID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email = strings.ToLower(email)
	if _, ok := r.s.emails[email]; ok {
		return fmt.Errorf("email %s: %w", email, database.ErrDuplicate)
	}
	r.s.emails[email] = accountID
	return nil
}

func (r *EmailRegistry) Release(_ context.Context, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.emails, strings.ToLower(email))
	return nil
}
