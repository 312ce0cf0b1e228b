// Package memory holds mutex-guarded implementations of the repositories.
// It backs STORE=memory and the service tests, and mirrors the conditional
// write semantics of the Mongo repositories.
package memory

import (
	"strings"
	"sync"
)

// Store is the shared state behind the three repositories. Worker and
// booking writes share one lock so rating aggregation sees a consistent view.
type Store struct {
	mu        sync.RWMutex
	customers map[string]customerRecord
	workers   map[string]workerRecord
	bookings  map[string]bookingRecord
	emails    map[string]string
}

func NewStore() *Store {
	return &Store{
		customers: map[string]customerRecord{},
		workers:   map[string]workerRecord{},
		bookings:  map[string]bookingRecord{},
		emails:    map[string]string{},
	}
}

func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }
func (s *Store) Workers() *WorkerRepo     { return &WorkerRepo{s: s} }
func (s *Store) Bookings() *BookingRepo   { return &BookingRepo{s: s} }
func (s *Store) Emails() *EmailRegistry   { return &EmailRegistry{s: s} }

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
