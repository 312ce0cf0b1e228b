package auth

import (
	"context"

	accountRepo "hiredaily/database/repository/account"
	customerRepo "hiredaily/database/repository/customer"
	workerRepo "hiredaily/database/repository/worker"
	"hiredaily/models"
	"hiredaily/utils"
)

type AuthService interface {
	// Registration
	RegisterCustomer(ctx context.Context, req models.CustomerRegistration) (*models.AuthResponse, error)
	RegisterWorker(ctx context.Context, req models.WorkerRegistration) (*models.AuthResponse, error)

	// Authentication
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (*models.Principal, error)
	Authorize(principal *models.Principal, kind models.Kind) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Customers customerRepo.CustomerRepository
	Workers   workerRepo.WorkerRepository
	Emails    accountRepo.EmailRegistry
	Tokens    *utils.TokenManager
}

func NewAuthService(customers customerRepo.CustomerRepository, workers workerRepo.WorkerRepository, emails accountRepo.EmailRegistry, tokens *utils.TokenManager) *DefaultAuthService {
	return &DefaultAuthService{Customers: customers, Workers: workers, Emails: emails, Tokens: tokens}
}

var (
	ErrDuplicateAccount   = utils.NewConflict(utils.CodeDuplicateAccount, "User already exists with this email")
	ErrInvalidUserType    = utils.NewConflict(utils.CodeInvalidUserType, "Invalid user type")
	ErrInvalidCredentials = utils.NewAppError(utils.CodeInvalidCredentials, "Invalid credentials", 401)
)
