package customer

import (
	"context"
	"errors"
	"strings"

	"hiredaily/database"
	customerRepo "hiredaily/database/repository/customer"
	"hiredaily/models"
	"hiredaily/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	GetProfile(ctx context.Context, customerID string) (*models.Customer, error)
	UpdateProfile(ctx context.Context, customerID string, update models.CustomerUpdate) (*models.Customer, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func NewCustomerService(repo customerRepo.CustomerRepository) *DefaultCustomerService {
	return &DefaultCustomerService{Repo: repo}
}

var ErrCustomerNotFound = utils.NewNotFound("User")

func (s *DefaultCustomerService) GetProfile(ctx context.Context, customerID string) (*models.Customer, error) {
	c, err := s.Repo.GetByID(ctx, customerID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return c, nil
}

func (s *DefaultCustomerService) UpdateProfile(ctx context.Context, customerID string, update models.CustomerUpdate) (*models.Customer, error) {
	if err := utils.ValidateStruct(update); err != nil {
		return nil, err
	}
	c, err := s.GetProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		c.Name = strings.TrimSpace(*update.Name)
	}
	if update.Phone != nil && *update.Phone != "" {
		c.Phone = *update.Phone
	}
	if update.Location != nil {
		c.Location = *update.Location
	}

	if err := s.Repo.UpdateProfile(ctx, c); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, utils.NewInternal(err)
	}
	utils.GetLogger().Info("customer profile updated", zap.String("customerId", customerID))
	return c, nil
}
