package customerRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hiredaily/database"
	"hiredaily/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new customer document.
func (r *MongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	customer.Email = strings.ToLower(customer.Email)
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", database.TranslateError(err))
	}
	return nil
}

// UpdateProfile sets the editable profile fields of an existing customer.
func (r *MongoCustomerRepo) UpdateProfile(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	customer.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":      customer.Name,
		"phone":     customer.Phone,
		"location":  customer.Location,
		"updatedAt": customer.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": customer.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update customer with id %s: %w", customer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer with id %s: %w", customer.ID, database.ErrNotFound)
	}
	return nil
}
