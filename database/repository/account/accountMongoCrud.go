package accountRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hiredaily/database"
	"hiredaily/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const collectionName = "account_emails"

type emailClaim struct {
	Email     string      `bson:"email"`
	Kind      models.Kind `bson:"userType"`
	AccountID string      `bson:"accountId"`
	CreatedAt time.Time   `bson:"createdAt"`
}

// MongoEmailRegistry keeps one document per claimed email under a unique index.
type MongoEmailRegistry struct {
	coll *mongo.Collection
}

func NewMongoEmailRegistry(ctx context.Context, db *mongo.Database, logger *zap.Logger) EmailRegistry {
	repo := &MongoEmailRegistry{coll: db.Collection(collectionName)}

	if err := repo.ensureIndexes(ctx); err != nil {
		logger.Warn("account email indexes not created", zap.Error(err))
	}
	return repo
}

func (r *MongoEmailRegistry) Claim(ctx context.Context, email string, kind models.Kind, accountID string) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	claim := emailClaim{
		Email:     strings.ToLower(email),
		Kind:      kind,
		AccountID: accountID,
		CreatedAt: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, claim); err != nil {
		return fmt.Errorf("failed to claim email: %w", database.TranslateError(err))
	}
	return nil
}

func (r *MongoEmailRegistry) Release(ctx context.Context, email string) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"email": strings.ToLower(email)}); err != nil {
		return fmt.Errorf("failed to release email claim: %w", err)
	}
	return nil
}
