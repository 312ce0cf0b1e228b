package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hiredaily/database/repository/memory"
	"hiredaily/handlers"
	"hiredaily/models"
	"hiredaily/services/auth"
	"hiredaily/services/booking"
	"hiredaily/services/customer"
	"hiredaily/services/payment"
	"hiredaily/services/worker"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

type paidGateway struct{}

func (paidGateway) CreateCheckoutSession(_ context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	return &models.CheckoutSession{SessionID: "cs_" + req.BookingID, URL: "https://checkout.example/" + req.BookingID}, nil
}

func (paidGateway) GetSession(_ context.Context, id string) (*models.SessionStatus, error) {
	return &models.SessionStatus{SessionID: id, Paid: true, Metadata: map[string]string{models.MetadataBookingID: id[len("cs_"):]}}, nil
}

func newServer() *gin.Engine {
	store := memory.NewStore()
	tokens := utils.NewTokenManager("route-secret", time.Hour)
	bookingSvc := booking.NewBookingService(store.Bookings(), store.Workers(), store.Customers())

	hb := handlers.NewHandlerBundle(handlers.Services{
		Auth:              auth.NewAuthService(store.Customers(), store.Workers(), store.Emails(), tokens),
		Workers:           worker.NewWorkerService(store.Workers()),
		Customers:         customer.NewCustomerService(store.Customers()),
		Bookings:          bookingSvc,
		Payments:          payment.NewPaymentService(store.Bookings(), store.Workers(), paidGateway{}, bookingSvc, "inr", "http://localhost:3000"),
		MaxRequestsPerMin: 1000,
	})
	r := gin.New()
	r.Use(utils.ErrorHandler())
	RegisterRoutes(r, hb)
	return r
}

type client struct {
	t *testing.T
	r *gin.Engine
}

func (c client) do(method, path, token string, body any, out any) int {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	if out != nil {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

var location = map[string]string{"city": "Pune", "state": "MH", "zipCode": "411001"}

func register(t *testing.T, c client) (cust, wrk models.AuthResponse) {
	t.Helper()
	code := c.do(http.MethodPost, "/api/auth/register-user", "", map[string]any{
		"name": "Meera", "email": "meera@x.com", "password": "secret1", "phone": "9876543210", "location": location,
	}, &cust)
	require.Equal(t, http.StatusCreated, code)

	code = c.do(http.MethodPost, "/api/auth/register-worker", "", map[string]any{
		"name": "Ravi", "email": "ravi@x.com", "password": "secret1", "phone": "9876543211", "location": location,
		"skills": []string{"plumber"}, "hourlyRate": 50, "experience": 3,
	}, &wrk)
	require.Equal(t, http.StatusCreated, code)
	return cust, wrk
}

func TestRootAndHealth(t *testing.T) {
	c := client{t, newServer()}
	var body map[string]string
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/", "", nil, &body))
	assert.Equal(t, "HireDaily API is running!", body["message"])
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/health", "", nil, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	c := client{t, newServer()}
	cust, wrk := register(t, c)

	var skills []string
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/workers/skills", "", nil, &skills))
	assert.Contains(t, skills, "handyman")

	var found models.WorkerList
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/workers?skill=plumber&location=pun&maxRate=60", "", nil, &found))
	require.Len(t, found.Workers, 1)
	assert.Equal(t, wrk.ID, found.Workers[0].ID)

	req := map[string]any{
		"workerId":       wrk.ID,
		"serviceType":    "plumber",
		"description":    "Fix the sink",
		"scheduledDate":  time.Now().Add(72 * time.Hour).Format("2006-01-02"),
		"scheduledTime":  "09:30",
		"estimatedHours": 3,
		"address":        map[string]string{"street": "1 MG Road", "city": "Pune", "state": "MH", "zipCode": "411001"},
	}
	var created models.BookingView
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/bookings", cust.Token, req, &created))
	assert.Equal(t, 150.0, created.TotalCost)
	assert.Equal(t, models.StatusPending, created.Status)

	// Workers cannot create bookings.
	var errBody utils.ErrorBody
	assert.Equal(t, http.StatusForbidden, c.do(http.MethodPost, "/api/bookings", wrk.Token, req, &errBody))
	assert.Equal(t, utils.CodeForbidden, errBody.Error.Code)

	// Both parties can read it.
	var seen models.BookingView
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/bookings/"+created.ID, wrk.Token, nil, &seen))
	require.NotNil(t, seen.Customer)
	assert.Equal(t, "Meera", seen.Customer.Name)

	var session models.CheckoutSession
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/payments/create-checkout-session", cust.Token, map[string]string{"bookingId": created.ID}, &session))

	var confirmation models.PaymentConfirmation
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/payments/success", cust.Token,
		map[string]string{"sessionId": session.SessionID, "bookingId": created.ID}, &confirmation))
	assert.True(t, confirmation.Success)
	assert.Equal(t, models.StatusConfirmed, confirmation.Booking.Status)
	assert.Equal(t, models.PaymentPaid, confirmation.Booking.PaymentStatus)

	var status models.PaymentStatusView
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/payments/status/"+created.ID, cust.Token, nil, &status))
	assert.Equal(t, models.PaymentPaid, status.PaymentStatus)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/payments/create-checkout-session", cust.Token, map[string]string{"bookingId": created.ID}, &errBody))
	assert.Equal(t, utils.CodeAlreadyPaid, errBody.Error.Code)

	for _, s := range []string{"in-progress", "completed"} {
		require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/api/workers/bookings/"+created.ID+"/status", wrk.Token, map[string]string{"status": s}, nil))
	}
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, "/api/workers/bookings/"+created.ID+"/status", wrk.Token, map[string]string{"status": "pending"}, &errBody))
	assert.Equal(t, utils.CodeInvalidTransition, errBody.Error.Code)

	var rated models.BookingView
	require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/api/bookings/"+created.ID+"/rate", cust.Token, map[string]any{"score": 5, "review": "Great"}, &rated))
	assert.Equal(t, 5, rated.Rating.Score)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, "/api/bookings/"+created.ID+"/rate", cust.Token, map[string]any{"score": 4}, &errBody))
	assert.Equal(t, utils.CodeAlreadyRated, errBody.Error.Code)

	var profile models.Worker
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/workers/"+wrk.ID, "", nil, &profile))
	assert.Equal(t, models.Rating{Average: 5, Count: 1}, profile.Rating)

	var list models.BookingList
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/workers/bookings?status=completed", wrk.Token, nil, &list))
	assert.Equal(t, int64(1), list.Total)
}

func TestAuthErrorsOverHTTP(t *testing.T) {
	c := client{t, newServer()}
	_, wrk := register(t, c)

	var errBody utils.ErrorBody
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/auth/register-worker", "", map[string]any{
		"name": "Dup", "email": "MEERA@x.com", "password": "secret1", "phone": "9876543212", "location": location,
		"skills": []string{"painter"}, "hourlyRate": 20, "experience": 0,
	}, &errBody))
	assert.Equal(t, utils.CodeDuplicateAccount, errBody.Error.Code)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/auth/register-user", "", map[string]any{
		"name": "", "email": "bad", "password": "123", "phone": "1", "location": map[string]string{},
	}, &errBody))
	assert.Equal(t, utils.CodeValidation, errBody.Error.Code)
	assert.GreaterOrEqual(t, len(errBody.Error.Fields), 7)

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@x.com", "password": "secret1", "userType": "user",
	}, &errBody))
	assert.Equal(t, utils.CodeInvalidCredentials, errBody.Error.Code)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "meera@x.com", "password": "secret1", "userType": "admin",
	}, &errBody))
	assert.Equal(t, utils.CodeInvalidUserType, errBody.Error.Code)

	var login models.AuthResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "meera@x.com", "password": "secret1", "userType": "user",
	}, &login))

	var me models.Customer
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/auth/profile", login.Token, nil, &me))
	assert.Equal(t, "Meera", me.Name)

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/users/profile", "", nil, &errBody))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/users/profile", login.Token+"x", nil, &errBody))
	assert.Equal(t, http.StatusForbidden, c.do(http.MethodGet, "/api/users/profile", wrk.Token, nil, &errBody))
}
