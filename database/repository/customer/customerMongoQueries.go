package customerRepo

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

const collectionName = "customers"

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo(ctx context.Context, db *mongo.Database, logger *zap.Logger) CustomerRepository {
	repo := &MongoCustomerRepo{coll: db.Collection(collectionName)}

	if err := repo.ensureIndexes(ctx); err != nil {
		logger.Warn("customer indexes not created", zap.Error(err))
	}
	return repo
}

// safeProjection hides the password hash on profile reads.
var safeProjection = bson.M{"passwordHash": 0}

// GetByIDWithProjection retrieves a customer by its ID with an optional projection.
func (r *MongoCustomerRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.Customer, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&customer); err != nil {
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, database.TranslateError(err))
	}
	return &customer, nil
}

// GetByID retrieves a customer without its password hash.
func (r *MongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.GetByIDWithProjection(ctx, id, safeProjection)
}

// GetByIDs retrieves the listed customers without their password hashes.
func (r *MongoCustomerRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, options.Find().SetProjection(safeProjection))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

// GetByEmail retrieves the full customer document, password hash included.
func (r *MongoCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&customer); err != nil {
		return nil, fmt.Errorf("failed to fetch customer by email: %w", database.TranslateError(err))
	}
	return &customer, nil
}

// ExistsByEmail checks whether a customer with the given email already exists.
func (r *MongoCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"email": strings.ToLower(email)}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}
	return n > 0, nil
}
