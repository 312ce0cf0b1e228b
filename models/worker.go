package models

import (
	"slices"
	"time"
)

// Skill is one trade a worker offers.
type Skill string

const (
	SkillConstruction Skill = "construction"
	SkillElectrician  Skill = "electrician"
	SkillPlumber      Skill = "plumber"
	SkillCarpenter    Skill = "carpenter"
	SkillGardener     Skill = "gardener"
	SkillPainter      Skill = "painter"
	SkillCleaner      Skill = "cleaner"
	SkillHandyman     Skill = "handyman"
)

// Skills is the closed list served by GET /workers/skills.
var Skills = []Skill{
	SkillConstruction,
	SkillElectrician,
	SkillPlumber,
	SkillCarpenter,
	SkillGardener,
	SkillPainter,
	SkillCleaner,
	SkillHandyman,
}

func IsSkill(s string) bool {
	return slices.Contains(Skills, Skill(s))
}

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const (
	MinHourlyRate = 10
	MaxHourlyRate = 200
)

type AvailableHours struct {
	Start string `bson:"start" json:"start" validate:"omitempty,hhmm"`
	End   string `bson:"end" json:"end" validate:"omitempty,hhmm"`
}

type Availability struct {
	IsAvailable    bool           `bson:"isAvailable" json:"isAvailable"`
	AvailableDays  []string       `bson:"availableDays" json:"availableDays" validate:"omitempty,dive,weekday"`
	AvailableHours AvailableHours `bson:"availableHours" json:"availableHours"`
}

// DefaultAvailability is applied when a worker registers without one.
func DefaultAvailability() Availability {
	return Availability{
		IsAvailable:    true,
		AvailableDays:  []string{},
		AvailableHours: AvailableHours{Start: "09:00", End: "17:00"},
	}
}

// Rating is the aggregate derived from a worker's rated bookings.
type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

// Worker is an account offering services.
type Worker struct {
	ID           string       `bson:"id" json:"_id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email"`
	PasswordHash string       `bson:"passwordHash" json:"-"`
	Phone        string       `bson:"phone" json:"phone"`
	Skills       []Skill      `bson:"skills" json:"skills"`
	Location     Location     `bson:"location" json:"location"`
	HourlyRate   float64      `bson:"hourlyRate" json:"hourlyRate"`
	Experience   float64      `bson:"experience" json:"experience"`
	Description  string       `bson:"description" json:"description"`
	Availability Availability `bson:"availability" json:"availability"`
	Rating       Rating       `bson:"rating" json:"rating"`
	ProfileImage string       `bson:"profileImage" json:"profileImage"`
	UserType     Kind         `bson:"userType" json:"userType"`
	IsVerified   bool         `bson:"isVerified" json:"isVerified"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// HasSkill reports whether the worker offers the given service type.
func (w *Worker) HasSkill(serviceType string) bool {
	return slices.Contains(w.Skills, Skill(serviceType))
}

// WorkerRegistration is the payload accepted by POST /auth/register-worker.
type WorkerRegistration struct {
	Name         string        `json:"name" validate:"required,max=50"`
	Email        string        `json:"email" validate:"required,email"`
	Password     string        `json:"password" validate:"required,min=6"`
	Phone        string        `json:"phone" validate:"required,phone10"`
	Skills       []string      `json:"skills" validate:"required,min=1,dive,skill"`
	Location     Location      `json:"location"`
	HourlyRate   float64       `json:"hourlyRate" validate:"required,min=10,max=200"`
	Experience   *float64      `json:"experience" validate:"required,min=0"`
	Description  string        `json:"description" validate:"max=500"`
	Availability *Availability `json:"availability,omitempty"`
}

// WorkerUpdate carries optional profile changes. Nil fields are left as-is.
type WorkerUpdate struct {
	Name         *string       `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Phone        *string       `json:"phone,omitempty" validate:"omitempty,phone10"`
	Skills       []string      `json:"skills,omitempty" validate:"omitempty,dive,skill"`
	Location     *Location     `json:"location,omitempty"`
	HourlyRate   *float64      `json:"hourlyRate,omitempty" validate:"omitempty,min=10,max=200"`
	Experience   *float64      `json:"experience,omitempty" validate:"omitempty,min=0"`
	Description  *string       `json:"description,omitempty" validate:"omitempty,max=500"`
	Availability *Availability `json:"availability,omitempty"`
}

// WorkerSummary is the slice of a worker shown on bookings.
type WorkerSummary struct {
	ID         string  `json:"_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Skills     []Skill `json:"skills"`
	HourlyRate float64 `json:"hourlyRate"`
	Rating     Rating  `json:"rating"`
}

func (w *Worker) Summary() *WorkerSummary {
	if w == nil {
		return nil
	}
	return &WorkerSummary{
		ID:         w.ID,
		Name:       w.Name,
		Email:      w.Email,
		Phone:      w.Phone,
		Skills:     w.Skills,
		HourlyRate: w.HourlyRate,
		Rating:     w.Rating,
	}
}

// WorkerSearchCriteria holds the optional filters of GET /workers.
type WorkerSearchCriteria struct {
	Skill    string
	Location string
	MinRate  *float64
	MaxRate  *float64
	Search   string
	Page     Page
}

// WorkerList is the paginated response of GET /workers.
type WorkerList struct {
	Workers     []Worker `json:"workers"`
	Total       int64    `json:"total"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
}
