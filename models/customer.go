package models

import "time"

// Customer is an account that books workers.
type Customer struct {
	ID           string    `bson:"id" json:"_id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	Location     Location  `bson:"location" json:"location"`
	UserType     Kind      `bson:"userType" json:"userType"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CustomerRegistration is the payload accepted by POST /auth/register-user.
type CustomerRegistration struct {
	Name     string   `json:"name" validate:"required,max=50"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Phone    string   `json:"phone" validate:"required,phone10"`
	Location Location `json:"location"`
}

// CustomerUpdate carries optional profile changes. Nil fields are left as-is.
type CustomerUpdate struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Phone    *string   `json:"phone,omitempty" validate:"omitempty,phone10"`
	Location *Location `json:"location,omitempty"`
}

// CustomerSummary is the slice of a customer shown on bookings.
type CustomerSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c *Customer) Summary() *CustomerSummary {
	if c == nil {
		return nil
	}
	return &CustomerSummary{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}
