package models

import (
	"slices"
	"strings"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func IsBookingStatus(s string) bool {
	return slices.Contains(BookingStatuses, BookingStatus(s))
}

// IsFinal reports whether no further transitions are allowed.
func (s BookingStatus) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PaymentStatus tracks the money side of a booking.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// ServiceTypes lists the values a booking accepts: every worker skill plus
// "geriatric care", which no worker can hold as a skill.
var ServiceTypes = []string{
	string(SkillConstruction),
	string(SkillElectrician),
	string(SkillPlumber),
	string(SkillCarpenter),
	string(SkillGardener),
	string(SkillPainter),
	string(SkillCleaner),
	string(SkillHandyman),
	"geriatric care",
}

func IsServiceType(s string) bool {
	return slices.Contains(ServiceTypes, s)
}

// ParseScheduledDate accepts a calendar date or an RFC 3339 timestamp.
func ParseScheduledDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

const (
	MinEstimatedHours = 1
	MaxEstimatedHours = 12
	MinScore          = 1
	MaxScore          = 5
)

// BookingRating is attached once by the owning customer after completion.
type BookingRating struct {
	Score      int       `bson:"score" json:"score"`
	Review     string    `bson:"review" json:"review"`
	ReviewDate time.Time `bson:"reviewDate" json:"reviewDate"`
}

// Booking is a scheduled engagement between a customer and a worker.
type Booking struct {
	ID             string         `bson:"id" json:"_id"`
	CustomerID     string         `bson:"customerId" json:"customerId"`
	WorkerID       string         `bson:"workerId" json:"workerId"`
	ServiceType    string         `bson:"serviceType" json:"serviceType"`
	Description    string         `bson:"description" json:"description"`
	ScheduledDate  time.Time      `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime  string         `bson:"scheduledTime" json:"scheduledTime"`
	EstimatedHours float64        `bson:"estimatedHours" json:"estimatedHours"`
	HourlyRate     float64        `bson:"hourlyRate" json:"hourlyRate"`
	TotalCost      float64        `bson:"totalCost" json:"totalCost"`
	Address        Address        `bson:"address" json:"address"`
	Status         BookingStatus  `bson:"status" json:"status"`
	PaymentStatus  PaymentStatus  `bson:"paymentStatus" json:"paymentStatus"`
	Rating         *BookingRating `bson:"rating,omitempty" json:"rating,omitempty"`
	Notes          string         `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// IsRated reports whether a rating score has been recorded.
func (b *Booking) IsRated() bool {
	return b.Rating != nil && b.Rating.Score > 0
}

// ComputeTotalCost keeps TotalCost equal to EstimatedHours * HourlyRate.
// Repositories call it before every write.
func (b *Booking) ComputeTotalCost() {
	b.TotalCost = b.EstimatedHours * b.HourlyRate
}

// BookingRequest is the payload of POST /bookings.
type BookingRequest struct {
	WorkerID       string  `json:"workerId" validate:"required"`
	ServiceType    string  `json:"serviceType" validate:"required,servicetype"`
	Description    string  `json:"description" validate:"required,max=500"`
	ScheduledDate  string  `json:"scheduledDate" validate:"required,isodate,futuredate"`
	ScheduledTime  string  `json:"scheduledTime" validate:"required,hhmm"`
	EstimatedHours float64 `json:"estimatedHours" validate:"required,min=1,max=12"`
	Address        Address `json:"address"`
	Notes          string  `json:"notes" validate:"max=300"`
}

// RatingRequest is the payload of PUT /bookings/:id/rate.
type RatingRequest struct {
	Score  int    `json:"score" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"max=300"`
}

// BookingFilter narrows a booking listing to one party and optional status.
type BookingFilter struct {
	CustomerID string
	WorkerID   string
	Status     string
	Page       Page
}

// BookingView is a booking with its counterpart accounts attached.
type BookingView struct {
	Booking
	Worker   *WorkerSummary   `json:"worker,omitempty"`
	Customer *CustomerSummary `json:"user,omitempty"`
}

// BookingList is the paginated response of booking listings.
type BookingList struct {
	Bookings    []BookingView `json:"bookings"`
	Total       int64         `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}
