package models

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"required"`
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Location   *Location `json:"location,omitempty"`
	UserType   Kind      `json:"userType"`
	Skills     []Skill   `json:"skills,omitempty"`
	HourlyRate float64   `json:"hourlyRate,omitempty"`
	Experience float64   `json:"experience,omitempty"`
	Token      string    `json:"token"`
}
