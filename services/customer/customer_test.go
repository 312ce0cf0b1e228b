package customer

import (
	"context"
	"testing"

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

func TestCustomerProfile(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Customers()
	require.NoError(t, repo.Create(ctx, &models.Customer{
		ID:           "c-1",
		Name:         "Meera",
		Email:        "meera@x.com",
		PasswordHash: "hash",
		Phone:        "9876543210",
		Location:     models.Location{City: "Pune", State: "MH", ZipCode: "411001"},
	}))
	svc := NewCustomerService(repo)

	c, err := svc.GetProfile(ctx, "c-1")
	require.NoError(t, err)
	assert.Empty(t, c.PasswordHash)

	phone := "9123456780"
	c, err = svc.UpdateProfile(ctx, "c-1", models.CustomerUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, c.Phone)
	assert.Equal(t, "Meera", c.Name)
	assert.Equal(t, "Pune", c.Location.City)

	bad := "12"
	_, err = svc.UpdateProfile(ctx, "c-1", models.CustomerUpdate{Phone: &bad})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []utils.FieldError{{Field: "phone", Message: appErr.Fields[0].Message}}, appErr.Fields)

	_, err = svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
