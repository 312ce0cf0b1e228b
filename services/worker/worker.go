package worker

import (
	"context"
	"errors"
	"slices"
	"strings"

	"hiredaily/database"
	"hiredaily/models"
	"hiredaily/utils"

	"go.uber.org/zap"
)

// SearchWorkers lists available workers matching every supplied criterion.
func (s *DefaultWorkerService) SearchWorkers(ctx context.Context, criteria models.WorkerSearchCriteria) (*models.WorkerList, error) {
	var fields []utils.FieldError
	if criteria.Skill != "" && !models.IsSkill(criteria.Skill) {
		fields = append(fields, utils.FieldError{Field: "skill", Message: "skill is not a recognised skill"})
	}
	if criteria.MinRate != nil && criteria.MaxRate != nil && *criteria.MinRate > *criteria.MaxRate {
		fields = append(fields, utils.FieldError{Field: "minRate", Message: "minRate must not exceed maxRate"})
	}
	if len(fields) > 0 {
		return nil, utils.NewValidationError(fields)
	}
	criteria.Page = criteria.Page.Normalize()

	workers, total, err := s.Repo.Search(ctx, criteria)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return &models.WorkerList{
		Workers:     workers,
		Total:       total,
		TotalPages:  models.TotalPages(total, criteria.Page.Limit),
		CurrentPage: criteria.Page.Page,
	}, nil
}

func (s *DefaultWorkerService) GetWorkerByID(ctx context.Context, id string) (*models.Worker, error) {
	w, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrWorkerNotFound
	}
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return w, nil
}

// UpdateProfile applies the fields present in update. Rating, email and
// credentials cannot be changed here.
func (s *DefaultWorkerService) UpdateProfile(ctx context.Context, workerID string, update models.WorkerUpdate) (*models.Worker, error) {
	if err := utils.ValidateStruct(update); err != nil {
		return nil, err
	}
	w, err := s.GetWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	ApplyUpdate(w, update)
	if err := s.Repo.UpdateProfile(ctx, w); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, utils.NewInternal(err)
	}
	utils.GetLogger().Info("worker profile updated", zap.String("workerId", workerID))
	return w, nil
}

// ApplyUpdate copies every non-nil, non-empty field of u onto w.
func ApplyUpdate(w *models.Worker, u models.WorkerUpdate) {
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		w.Name = strings.TrimSpace(*u.Name)
	}
	if u.Phone != nil && *u.Phone != "" {
		w.Phone = *u.Phone
	}
	if len(u.Skills) > 0 {
		skills := make([]models.Skill, len(u.Skills))
		for i, sk := range u.Skills {
			skills[i] = models.Skill(sk)
		}
		w.Skills = skills
	}
	if u.Location != nil {
		w.Location = *u.Location
	}
	if u.HourlyRate != nil {
		w.HourlyRate = *u.HourlyRate
	}
	if u.Experience != nil {
		w.Experience = *u.Experience
	}
	if u.Description != nil {
		w.Description = *u.Description
	}
	if u.Availability != nil {
		w.Availability = *u.Availability
	}
}

func (s *DefaultWorkerService) Skills() []models.Skill {
	return slices.Clone(models.Skills)
}
