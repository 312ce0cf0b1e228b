package auth

import (
	"context"
	"errors"

	"hiredaily/database"
	"hiredaily/models"
	"hiredaily/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks credentials against the collection named by userType only.
// Unknown email and wrong password produce the same error.
func (s *DefaultAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	kind, ok := models.ParseKind(req.UserType)
	if !ok {
		return nil, ErrInvalidUserType
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var (
		hash string
		resp func() (*models.AuthResponse, error)
	)
	switch kind {
	case models.KindCustomer:
		c, err := s.Customers.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, lookupErr(err)
		}
		hash = c.PasswordHash
		resp = func() (*models.AuthResponse, error) { return s.customerResponse(c) }
	case models.KindWorker:
		w, err := s.Workers.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, lookupErr(err)
		}
		hash = w.PasswordHash
		resp = func() (*models.AuthResponse, error) { return s.workerResponse(w) }
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		utils.GetLogger().Debug("login rejected", zap.String("userType", string(kind)))
		return nil, ErrInvalidCredentials
	}
	return resp()
}

func lookupErr(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrInvalidCredentials
	}
	return utils.NewInternal(err)
}

// Authenticate resolves a bearer token to the current account.
func (s *DefaultAuthService) Authenticate(ctx context.Context, token string) (*models.Principal, error) {
	claims, err := s.Tokens.ValidateToken(token)
	if err != nil {
		return nil, utils.ErrUnauthorized.Wrap(err)
	}

	principal := &models.Principal{Kind: claims.Kind}
	switch claims.Kind {
	case models.KindCustomer:
		principal.Customer, err = s.Customers.GetByID(ctx, claims.AccountID)
	case models.KindWorker:
		principal.Worker, err = s.Workers.GetByID(ctx, claims.AccountID)
	}
	if errors.Is(err, database.ErrNotFound) {
		return nil, utils.ErrUnauthorized.Wrap(err)
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return principal, nil
}

func (s *DefaultAuthService) Authorize(principal *models.Principal, kind models.Kind) error {
	if principal == nil {
		return utils.ErrUnauthorized
	}
	if principal.Kind != kind {
		return utils.ErrForbidden
	}
	return nil
}
