package workerRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hiredaily/database"
	"hiredaily/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new worker document.
func (r *MongoWorkerRepo) Create(ctx context.Context, worker *models.Worker) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	worker.Email = strings.ToLower(worker.Email)
	worker.CreatedAt = now
	worker.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, worker); err != nil {
		return fmt.Errorf("failed to create worker: %w", database.TranslateError(err))
	}
	return nil
}

// UpdateProfile sets the editable profile fields of an existing worker.
// Rating, credentials and verification are never touched here.
func (r *MongoWorkerRepo) UpdateProfile(ctx context.Context, worker *models.Worker) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	worker.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":         worker.Name,
		"phone":        worker.Phone,
		"skills":       worker.Skills,
		"location":     worker.Location,
		"hourlyRate":   worker.HourlyRate,
		"experience":   worker.Experience,
		"description":  worker.Description,
		"availability": worker.Availability,
		"updatedAt":    worker.UpdatedAt,
	}}
	return r.updateOne(ctx, worker.ID, update)
}

// SetRating overwrites the aggregate rating.
func (r *MongoWorkerRepo) SetRating(ctx context.Context, id string, rating models.Rating) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":    rating,
		"updatedAt": time.Now(),
	}}
	return r.updateOne(ctx, id, update)
}

func (r *MongoWorkerRepo) updateOne(ctx context.Context, id string, update bson.M) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update worker with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker with id %s: %w", id, database.ErrNotFound)
	}
	return nil
}
