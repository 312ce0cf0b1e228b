package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	customerRepo "hiredaily/database/repository/customer"
	"hiredaily/database/repository/memory"
	"hiredaily/models"
	"hiredaily/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

func newService() *DefaultAuthService {
	store := memory.NewStore()
	return NewAuthService(store.Customers(), store.Workers(), store.Emails(), utils.NewTokenManager("test-secret", time.Hour))
}

var testLocation = models.Location{City: "Pune", State: "MH", ZipCode: "411001"}

func customerReg(email string) models.CustomerRegistration {
	return models.CustomerRegistration{
		Name:     "Meera",
		Email:    email,
		Password: "secret1",
		Phone:    "9876543210",
		Location: testLocation,
	}
}

func workerReg(email string) models.WorkerRegistration {
	exp := 4.0
	return models.WorkerRegistration{
		Name:       "Ravi",
		Email:      email,
		Password:   "secret1",
		Phone:      "9876543211",
		Skills:     []string{"plumber"},
		Location:   testLocation,
		HourlyRate: 50,
		Experience: &exp,
	}
}

func TestRegisterDuplicateAcrossKinds(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		first  func(*DefaultAuthService) error
		second func(*DefaultAuthService) error
	}{
		{"customer then customer",
			func(s *DefaultAuthService) error { _, err := s.RegisterCustomer(ctx, customerReg("a@x.com")); return err },
			func(s *DefaultAuthService) error { _, err := s.RegisterCustomer(ctx, customerReg("A@x.com")); return err }},
		{"customer then worker",
			func(s *DefaultAuthService) error { _, err := s.RegisterCustomer(ctx, customerReg("a@x.com")); return err },
			func(s *DefaultAuthService) error { _, err := s.RegisterWorker(ctx, workerReg("a@x.com")); return err }},
		{"worker then customer",
			func(s *DefaultAuthService) error { _, err := s.RegisterWorker(ctx, workerReg("a@x.com")); return err },
			func(s *DefaultAuthService) error { _, err := s.RegisterCustomer(ctx, customerReg("a@x.com")); return err }},
		{"worker then worker",
			func(s *DefaultAuthService) error { _, err := s.RegisterWorker(ctx, workerReg("a@x.com")); return err },
			func(s *DefaultAuthService) error { _, err := s.RegisterWorker(ctx, workerReg("a@x.com")); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newService()
			require.NoError(t, tc.first(s))
			assert.ErrorIs(t, tc.second(s), ErrDuplicateAccount)
		})
	}
}

func TestConcurrentRegistrationClaimsEmailOnce(t *testing.T) {
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		s := newService()
		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errs[0] = s.RegisterCustomer(ctx, customerReg("x@y.com"))
		}()
		go func() {
			defer wg.Done()
			_, errs[1] = s.RegisterWorker(ctx, workerReg("x@y.com"))
		}()
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, ErrDuplicateAccount)
		}
		require.Equal(t, 1, succeeded, "run %d", i)
	}
}

type failingCustomers struct {
	customerRepo.CustomerRepository
}

func (failingCustomers) Create(context.Context, *models.Customer) error {
	return errors.New("insert failed")
}

func TestFailedInsertReleasesEmail(t *testing.T) {
	store := memory.NewStore()
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	ctx := context.Background()

	broken := NewAuthService(failingCustomers{store.Customers()}, store.Workers(), store.Emails(), tokens)
	_, err := broken.RegisterCustomer(ctx, customerReg("retry@x.com"))
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.CodeInternal, appErr.Code)

	s := NewAuthService(store.Customers(), store.Workers(), store.Emails(), tokens)
	_, err = s.RegisterCustomer(ctx, customerReg("retry@x.com"))
	assert.NoError(t, err)
}

func TestRegisterWorkerDefaults(t *testing.T) {
	s := newService()
	resp, err := s.RegisterWorker(context.Background(), workerReg("ravi@x.com"))
	require.NoError(t, err)
	assert.Equal(t, models.KindWorker, resp.UserType)
	assert.Equal(t, []models.Skill{models.SkillPlumber}, resp.Skills)
	assert.NotEmpty(t, resp.Token)

	w, err := s.Workers.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAvailability(), w.Availability)
	assert.False(t, w.IsVerified)
	assert.Empty(t, w.PasswordHash)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	s := newService()
	req := customerReg("not-an-email")
	req.Phone = "123"

	_, err := s.RegisterCustomer(context.Background(), req)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.CodeValidation, appErr.Code)
	assert.Len(t, appErr.Fields, 2)
}

func TestLogin(t *testing.T) {
	s := newService()
	ctx := context.Background()
	_, err := s.RegisterCustomer(ctx, customerReg("meera@x.com"))
	require.NoError(t, err)

	resp, err := s.Login(ctx, models.LoginRequest{Email: "MEERA@x.com", Password: "secret1", UserType: "user"})
	require.NoError(t, err)
	assert.Equal(t, models.KindCustomer, resp.UserType)

	_, err = s.Login(ctx, models.LoginRequest{Email: "meera@x.com", Password: "wrong!", UserType: "customer"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Right password, wrong collection.
	_, err = s.Login(ctx, models.LoginRequest{Email: "meera@x.com", Password: "secret1", UserType: "worker"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, models.LoginRequest{Email: "meera@x.com", Password: "secret1", UserType: "admin"})
	assert.ErrorIs(t, err, ErrInvalidUserType)
}

func TestAuthenticate(t *testing.T) {
	s := newService()
	ctx := context.Background()
	reg, err := s.RegisterWorker(ctx, workerReg("ravi@x.com"))
	require.NoError(t, err)

	p, err := s.Authenticate(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, models.KindWorker, p.Kind)
	assert.Equal(t, reg.ID, p.ID())
	assert.Empty(t, p.Worker.PasswordHash)

	_, err = s.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	orphan, err := s.Tokens.GenerateToken("gone", models.KindCustomer)
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, orphan)
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
}

func TestAuthorize(t *testing.T) {
	s := newService()
	worker := &models.Principal{Kind: models.KindWorker, Worker: &models.Worker{ID: "w-1"}}
	assert.NoError(t, s.Authorize(worker, models.KindWorker))
	assert.ErrorIs(t, s.Authorize(worker, models.KindCustomer), utils.ErrForbidden)
	assert.ErrorIs(t, s.Authorize(nil, models.KindCustomer), utils.ErrUnauthorized)
}
