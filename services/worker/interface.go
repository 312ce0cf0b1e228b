package worker

import (
	"context"

	workerRepo "hiredaily/database/repository/worker"
	"hiredaily/models"
	"hiredaily/utils"
)

type WorkerService interface {
	SearchWorkers(ctx context.Context, criteria models.WorkerSearchCriteria) (*models.WorkerList, error)
	GetWorkerByID(ctx context.Context, id string) (*models.Worker, error)
	UpdateProfile(ctx context.Context, workerID string, update models.WorkerUpdate) (*models.Worker, error)
	Skills() []models.Skill
}

// DefaultWorkerService is the production implementation.
type DefaultWorkerService struct {
	Repo workerRepo.WorkerRepository
}

func NewWorkerService(repo workerRepo.WorkerRepository) *DefaultWorkerService {
	return &DefaultWorkerService{Repo: repo}
}

var ErrWorkerNotFound = utils.NewNotFound("Worker")
