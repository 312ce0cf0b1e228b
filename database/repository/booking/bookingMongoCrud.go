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
)

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	booking.ComputeTotalCost()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", database.TranslateError(err))
	}
	return nil
}

// BuildStatusChangeFilter matches the booking only while it is owned by the
// requester and still in one of the expected statuses.
func BuildStatusChangeFilter(change StatusChange) bson.M {
	filter := bson.M{"id": change.BookingID}
	if change.CustomerID != "" {
		filter["customerId"] = change.CustomerID
	}
	if change.WorkerID != "" {
		filter["workerId"] = change.WorkerID
	}
	if len(change.From) == 1 {
		filter["status"] = change.From[0]
	} else {
		filter["status"] = bson.M{"$in": change.From}
	}
	return filter
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, change StatusChange) (*models.Booking, error) {
	update := bson.M{"$set": bson.M{
		"status":    change.To,
		"updatedAt": time.Now(),
	}}
	return r.findOneAndUpdate(ctx, BuildStatusChangeFilter(change), update)
}

func (r *MongoBookingRepo) SetRating(ctx context.Context, id, customerID string, rating models.BookingRating) (*models.Booking, error) {
	filter := bson.M{
		"id":           id,
		"customerId":   customerID,
		"status":       models.StatusCompleted,
		"rating.score": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"rating":    rating,
		"updatedAt": time.Now(),
	}}
	return r.findOneAndUpdate(ctx, filter, update)
}

// MarkPaid uses a pipeline update so the status check and both writes
// happen atomically on the one document.
func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id string) (*models.Booking, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "paymentStatus", Value: models.PaymentPaid},
			{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$status", models.StatusPending}}},
				models.StatusConfirmed,
				"$status",
			}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}
	booking, err := r.findOneAndUpdate(ctx, bson.M{"id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", id, translateNoMatch(err))
	}
	return booking, nil
}

func (r *MongoBookingRepo) findOneAndUpdate(ctx context.Context, filter bson.M, update interface{}) (*models.Booking, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, database.ErrNoMatch
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &booking, nil
}

// translateNoMatch reports an unconditional update that matched nothing as missing.
func translateNoMatch(err error) error {
	if err == database.ErrNoMatch {
		return database.ErrNotFound
	}
	return err
}
