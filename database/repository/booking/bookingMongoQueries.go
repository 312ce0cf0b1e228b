package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"hiredaily/database"
	"hiredaily/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "bookings"

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo(ctx context.Context, db *mongo.Database, logger *zap.Logger) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection(collectionName)}

	if err := repo.ensureIndexes(ctx); err != nil {
		logger.Warn("booking indexes not created", zap.Error(err))
	}
	return repo
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, database.TranslateError(err))
	}
	return &booking, nil
}

// BuildListFilter scopes a listing to its owner and optional status.
func BuildListFilter(filter models.BookingFilter) bson.M {
	f := bson.M{}
	if filter.CustomerID != "" {
		f["customerId"] = filter.CustomerID
	}
	if filter.WorkerID != "" {
		f["workerId"] = filter.WorkerID
	}
	if filter.Status != "" {
		f["status"] = filter.Status
	}
	return f
}

// listSort puts customers' latest bookings first and workers' soonest first.
func listSort(filter models.BookingFilter) bson.D {
	dir := -1
	if filter.WorkerID != "" && filter.CustomerID == "" {
		dir = 1
	}
	return bson.D{{Key: "scheduledDate", Value: dir}}
}

func (r *MongoBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int64, error) {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	page := filter.Page.Normalize()
	query := BuildListFilter(filter)
	opts := options.Find().
		SetSort(listSort(filter)).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return bookings, total, nil
}

func (r *MongoBookingRepo) RatedScores(ctx context.Context, workerID string) ([]int, error) {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"workerId": workerID, "rating.score": bson.M{"$exists": true}}
	opts := options.Find().SetProjection(bson.M{"rating.score": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ratings for worker %s: %w", workerID, err)
	}
	defer cursor.Close(ctx)

	var scores []int
	for cursor.Next(ctx) {
		var doc struct {
			Rating models.BookingRating `bson:"rating"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode rating: %w", err)
		}
		scores = append(scores, doc.Rating.Score)
	}
	return scores, cursor.Err()
}
