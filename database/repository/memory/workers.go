package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"hiredaily/database"
	"hiredaily/models"
)

type workerRecord struct {
	models.Worker
}

// public returns a copy safe to hand out: no hash, no shared slices.
func (w workerRecord) public() models.Worker {
	out := w.Worker
	out.PasswordHash = ""
	out.Skills = slices.Clone(w.Skills)
	out.Availability.AvailableDays = slices.Clone(w.Availability.AvailableDays)
	return out
}

// WorkerRepo implements workerRepo.WorkerRepository.
type WorkerRepo struct {
	s *Store
}

func (r *WorkerRepo) Create(_ context.Context, worker *models.Worker) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	worker.Email = strings.ToLower(worker.Email)
	if _, ok := r.s.workers[worker.ID]; ok {
		return fmt.Errorf("worker id %s: %w", worker.ID, database.ErrDuplicate)
	}
	for _, w := range r.s.workers {
		if w.Email == worker.Email {
			return fmt.Errorf("worker email %s: %w", worker.Email, database.ErrDuplicate)
		}
	}
	now := time.Now()
	worker.CreatedAt = now
	worker.UpdatedAt = now
	rec := workerRecord{*worker}
	rec.Skills = slices.Clone(worker.Skills)
	r.s.workers[worker.ID] = rec
	return nil
}

func (r *WorkerRepo) GetByID(_ context.Context, id string) (*models.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.workers[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	w := rec.public()
	return &w, nil
}

func (r *WorkerRepo) GetByIDs(_ context.Context, ids []string) ([]models.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Worker{}
	for _, id := range ids {
		if rec, ok := r.s.workers[id]; ok {
			out = append(out, rec.public())
		}
	}
	return out, nil
}

func (r *WorkerRepo) GetByEmail(_ context.Context, email string) (*models.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, rec := range r.s.workers {
		if rec.Email == email {
			w := rec.public()
			w.PasswordHash = rec.PasswordHash
			return &w, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *WorkerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == database.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *WorkerRepo) UpdateProfile(_ context.Context, worker *models.Worker) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.workers[worker.ID]
	if !ok {
		return fmt.Errorf("worker with id %s: %w", worker.ID, database.ErrNotFound)
	}
	worker.UpdatedAt = time.Now()
	rec.Name = worker.Name
	rec.Phone = worker.Phone
	rec.Skills = slices.Clone(worker.Skills)
	rec.Location = worker.Location
	rec.HourlyRate = worker.HourlyRate
	rec.Experience = worker.Experience
	rec.Description = worker.Description
	rec.Availability = worker.Availability
	rec.UpdatedAt = worker.UpdatedAt
	r.s.workers[worker.ID] = rec
	return nil
}

func (r *WorkerRepo) SetRating(_ context.Context, id string, rating models.Rating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.workers[id]
	if !ok {
		return fmt.Errorf("worker with id %s: %w", id, database.ErrNotFound)
	}
	rec.Rating = rating
	rec.UpdatedAt = time.Now()
	r.s.workers[id] = rec
	return nil
}

// matches applies the same conjunction as the Mongo search filter.
func matches(w models.Worker, c models.WorkerSearchCriteria) bool {
	if !w.Availability.IsAvailable {
		return false
	}
	if c.Skill != "" && !w.HasSkill(c.Skill) {
		return false
	}
	if loc := strings.TrimSpace(c.Location); loc != "" {
		if !containsFold(w.Location.City, loc) && !containsFold(w.Location.State, loc) {
			return false
		}
	}
	if c.MinRate != nil && w.HourlyRate < *c.MinRate {
		return false
	}
	if c.MaxRate != nil && w.HourlyRate > *c.MaxRate {
		return false
	}
	if q := strings.TrimSpace(c.Search); q != "" {
		hit := containsFold(w.Name, q) || containsFold(w.Description, q)
		for _, s := range w.Skills {
			hit = hit || containsFold(string(s), q)
		}
		if !hit {
			return false
		}
	}
	return true
}

func (r *WorkerRepo) Search(_ context.Context, criteria models.WorkerSearchCriteria) ([]models.Worker, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found []models.Worker
	for _, rec := range r.s.workers {
		if matches(rec.Worker, criteria) {
			found = append(found, rec.public())
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Rating.Average != found[j].Rating.Average {
			return found[i].Rating.Average > found[j].Rating.Average
		}
		return found[i].CreatedAt.After(found[j].CreatedAt)
	})
	return paginate(found, criteria.Page), int64(len(found)), nil
}

func paginate[T any](items []T, p models.Page) []T {
	p = p.Normalize()
	start := int(p.Skip())
	if start >= len(items) {
		return []T{}
	}
	end := min(start+p.Limit, len(items))
	return items[start:end]
}
