package auth

import (
	"context"
	"errors"
	"strings"

	"hiredaily/database"
	"hiredaily/models"
	"hiredaily/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// emailTaken checks both account collections; an email identifies at most
// one account across kinds.
func (s *DefaultAuthService) emailTaken(ctx context.Context, email string) (bool, error) {
	taken, err := s.Customers.ExistsByEmail(ctx, email)
	if err != nil || taken {
		return taken, err
	}
	return s.Workers.ExistsByEmail(ctx, email)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *DefaultAuthService) prepare(ctx context.Context, email, password string) (string, error) {
	taken, err := s.emailTaken(ctx, email)
	if err != nil {
		return "", utils.NewInternal(err)
	}
	if taken {
		return "", ErrDuplicateAccount
	}
	hash, err := hashPassword(password)
	if err != nil {
		return "", utils.NewInternal(err)
	}
	return hash, nil
}

// createErr maps a unique-index rejection that slipped past emailTaken.
func createErr(err error) error {
	if errors.Is(err, database.ErrDuplicate) {
		return ErrDuplicateAccount.Wrap(err)
	}
	return utils.NewInternal(err)
}

// claimEmail reserves the email across both kinds. Of two concurrent
// registrations that both passed emailTaken, only one claim succeeds.
func (s *DefaultAuthService) claimEmail(ctx context.Context, email string, kind models.Kind, accountID string) error {
	if err := s.Emails.Claim(ctx, email, kind, accountID); err != nil {
		return createErr(err)
	}
	return nil
}

func (s *DefaultAuthService) releaseEmail(ctx context.Context, email string) {
	if err := s.Emails.Release(ctx, email); err != nil {
		utils.GetLogger().Warn("email claim not released", zap.String("email", email), zap.Error(err))
	}
}

func (s *DefaultAuthService) RegisterCustomer(ctx context.Context, req models.CustomerRegistration) (*models.AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	hash, err := s.prepare(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Phone:        req.Phone,
		Location:     req.Location,
		UserType:     models.KindCustomer,
	}
	if err := s.claimEmail(ctx, customer.Email, models.KindCustomer, customer.ID); err != nil {
		return nil, err
	}
	if err := s.Customers.Create(ctx, customer); err != nil {
		s.releaseEmail(ctx, customer.Email)
		return nil, createErr(err)
	}
	utils.GetLogger().Info("customer registered", zap.String("customerId", customer.ID))
	return s.customerResponse(customer)
}

func (s *DefaultAuthService) RegisterWorker(ctx context.Context, req models.WorkerRegistration) (*models.AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	hash, err := s.prepare(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	availability := models.DefaultAvailability()
	if req.Availability != nil {
		availability = *req.Availability
		if availability.AvailableHours.Start == "" {
			availability.AvailableHours.Start = "09:00"
		}
		if availability.AvailableHours.End == "" {
			availability.AvailableHours.End = "17:00"
		}
	}

	skills := make([]models.Skill, len(req.Skills))
	for i, sk := range req.Skills {
		skills[i] = models.Skill(sk)
	}

	worker := &models.Worker{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Phone:        req.Phone,
		Skills:       skills,
		Location:     req.Location,
		HourlyRate:   req.HourlyRate,
		Experience:   *req.Experience,
		Description:  req.Description,
		Availability: availability,
		UserType:     models.KindWorker,
	}
	if err := s.claimEmail(ctx, worker.Email, models.KindWorker, worker.ID); err != nil {
		return nil, err
	}
	if err := s.Workers.Create(ctx, worker); err != nil {
		s.releaseEmail(ctx, worker.Email)
		return nil, createErr(err)
	}
	utils.GetLogger().Info("worker registered", zap.String("workerId", worker.ID))
	return s.workerResponse(worker)
}

func (s *DefaultAuthService) customerResponse(c *models.Customer) (*models.AuthResponse, error) {
	token, err := s.Tokens.GenerateToken(c.ID, models.KindCustomer)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	loc := c.Location
	return &models.AuthResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Location: &loc,
		UserType: models.KindCustomer,
		Token:    token,
	}, nil
}

func (s *DefaultAuthService) workerResponse(w *models.Worker) (*models.AuthResponse, error) {
	token, err := s.Tokens.GenerateToken(w.ID, models.KindWorker)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	loc := w.Location
	return &models.AuthResponse{
		ID:         w.ID,
		Name:       w.Name,
		Email:      w.Email,
		Phone:      w.Phone,
		Location:   &loc,
		UserType:   models.KindWorker,
		Skills:     w.Skills,
		HourlyRate: w.HourlyRate,
		Experience: w.Experience,
		Token:      token,
	}, nil
}
