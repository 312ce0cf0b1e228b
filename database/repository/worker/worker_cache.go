package workerRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hiredaily/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "worker:profile:"

func profileKey(id string) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, id)
}

// CachedRepo serves GetByID from Redis and drops the entry on every write
// to the worker. Cache failures fall through to the wrapped repository.
type CachedRepo struct {
	WorkerRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRepo(repo WorkerRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRepo {
	return &CachedRepo{WorkerRepository: repo, client: client, ttl: ttl, logger: logger}
}

func (c *CachedRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	data, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if err == nil {
		var worker models.Worker
		if err := json.Unmarshal(data, &worker); err == nil {
			return &worker, nil
		}
		c.logger.Warn("discarding corrupt worker cache entry", zap.String("workerID", id))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("worker cache read failed", zap.String("workerID", id), zap.Error(err))
	}

	worker, err := c.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(worker); err == nil {
		if err := c.client.Set(ctx, profileKey(id), data, c.ttl).Err(); err != nil {
			c.logger.Warn("worker cache write failed", zap.String("workerID", id), zap.Error(err))
		}
	}
	return worker, nil
}

func (c *CachedRepo) UpdateProfile(ctx context.Context, worker *models.Worker) error {
	if err := c.WorkerRepository.UpdateProfile(ctx, worker); err != nil {
		return err
	}
	c.invalidate(ctx, worker.ID)
	return nil
}

func (c *CachedRepo) SetRating(ctx context.Context, id string, rating models.Rating) error {
	if err := c.WorkerRepository.SetRating(ctx, id, rating); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachedRepo) invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, profileKey(id)).Err(); err != nil {
		c.logger.Warn("worker cache invalidation failed", zap.String("workerID", id), zap.Error(err))
	}
}
