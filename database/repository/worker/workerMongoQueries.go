package workerRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hiredaily/database"
	"hiredaily/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "workers"

// MongoWorkerRepo implements WorkerRepository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo creates a new instance of WorkerRepository using MongoDB.
func NewMongoWorkerRepo(ctx context.Context, db *mongo.Database, logger *zap.Logger) WorkerRepository {
	repo := &MongoWorkerRepo{coll: db.Collection(collectionName)}

	if err := repo.ensureIndexes(ctx); err != nil {
		logger.Warn("worker indexes not created", zap.Error(err))
	}
	return repo
}

var safeProjection = bson.M{"passwordHash": 0}

// GetByIDWithProjection retrieves a worker by its ID with an optional projection.
func (r *MongoWorkerRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.Worker, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var worker models.Worker
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&worker); err != nil {
		return nil, fmt.Errorf("failed to fetch worker with id %s: %w", id, database.TranslateError(err))
	}
	return &worker, nil
}

func (r *MongoWorkerRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	return r.GetByIDWithProjection(ctx, id, safeProjection)
}

func (r *MongoWorkerRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Worker, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, options.Find().SetProjection(safeProjection))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workers: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("failed to decode workers: %w", err)
	}
	return workers, nil
}

func (r *MongoWorkerRepo) GetByEmail(ctx context.Context, email string) (*models.Worker, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var worker models.Worker
	if err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&worker); err != nil {
		return nil, fmt.Errorf("failed to fetch worker by email: %w", database.TranslateError(err))
	}
	return &worker, nil
}

func (r *MongoWorkerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"email": strings.ToLower(email)}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check worker email: %w", err)
	}
	return n > 0, nil
}
