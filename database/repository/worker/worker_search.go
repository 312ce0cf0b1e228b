package workerRepo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hiredaily/database"
	"hiredaily/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BuildSearchFilter turns discovery criteria into a conjunctive Mongo filter.
// Unavailable workers are always excluded.
func BuildSearchFilter(criteria models.WorkerSearchCriteria) bson.M {
	filter := bson.M{"availability.isAvailable": true}
	var and []bson.M

	if criteria.Skill != "" {
		filter["skills"] = criteria.Skill
	}

	if loc := strings.TrimSpace(criteria.Location); loc != "" {
		pattern := containsPattern(loc)
		and = append(and, bson.M{"$or": []bson.M{
			{"location.city": pattern},
			{"location.state": pattern},
		}})
	}

	if criteria.MinRate != nil || criteria.MaxRate != nil {
		rate := bson.M{}
		if criteria.MinRate != nil {
			rate["$gte"] = *criteria.MinRate
		}
		if criteria.MaxRate != nil {
			rate["$lte"] = *criteria.MaxRate
		}
		filter["hourlyRate"] = rate
	}

	if search := strings.TrimSpace(criteria.Search); search != "" {
		pattern := containsPattern(search)
		and = append(and, bson.M{"$or": []bson.M{
			{"name": pattern},
			{"description": pattern},
			{"skills": pattern},
		}})
	}

	if len(and) > 0 {
		filter["$and"] = and
	}
	return filter
}

// containsPattern matches s literally anywhere, ignoring case.
func containsPattern(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// SearchSort orders by rating, best first, then newest.
var SearchSort = bson.D{
	{Key: "rating.average", Value: -1},
	{Key: "createdAt", Value: -1},
}

func (r *MongoWorkerRepo) Search(ctx context.Context, criteria models.WorkerSearchCriteria) ([]models.Worker, int64, error) {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	page := criteria.Page.Normalize()
	filter := BuildSearchFilter(criteria)

	opts := options.Find().
		SetProjection(safeProjection).
		SetSort(SearchSort).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("worker search failed: %w", err)
	}
	defer cursor.Close(ctx)

	workers := []models.Worker{}
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, 0, fmt.Errorf("failed to decode workers: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("worker count failed: %w", err)
	}
	return workers, total, nil
}
