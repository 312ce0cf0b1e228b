package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hiredaily/database"
	"hiredaily/models"
)

type customerRecord struct {
	models.Customer
}

// CustomerRepo implements customerRepo.CustomerRepository.
type CustomerRepo struct {
	s *Store
}

func (r *CustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	customer.Email = strings.ToLower(customer.Email)
	if _, ok := r.s.customers[customer.ID]; ok {
		return fmt.Errorf("customer id %s: %w", customer.ID, database.ErrDuplicate)
	}
	for _, c := range r.s.customers {
		if c.Email == customer.Email {
			return fmt.Errorf("customer email %s: %w", customer.Email, database.ErrDuplicate)
		}
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	r.s.customers[customer.ID] = customerRecord{*customer}
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id string) (*models.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.customers[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	c := rec.Customer
	c.PasswordHash = ""
	return &c, nil
}

func (r *CustomerRepo) GetByIDs(_ context.Context, ids []string) ([]models.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Customer{}
	for _, id := range ids {
		if rec, ok := r.s.customers[id]; ok {
			c := rec.Customer
			c.PasswordHash = ""
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CustomerRepo) GetByEmail(_ context.Context, email string) (*models.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, rec := range r.s.customers {
		if rec.Email == email {
			c := rec.Customer
			return &c, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *CustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == database.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *CustomerRepo) UpdateProfile(_ context.Context, customer *models.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.customers[customer.ID]
	if !ok {
		return fmt.Errorf("customer with id %s: %w", customer.ID, database.ErrNotFound)
	}
	customer.UpdatedAt = time.Now()
	rec.Name = customer.Name
	rec.Phone = customer.Phone
	rec.Location = customer.Location
	rec.UpdatedAt = customer.UpdatedAt
	r.s.customers[customer.ID] = rec
	return nil
}
