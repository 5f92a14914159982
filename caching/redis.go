package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"github.com/swagftw/gi"

	"puck-staking/goutils/datamodel"
	"puck-staking/goutils/redisutils"
)

type RedisCache struct {
	readClient  *redis.Client
	writeClient *redis.Client
}

var _ DbCache = (*RedisCache)(nil)

func NewRedisCache(readClient, writeClient *redis.Client) *RedisCache {
	cache := &RedisCache{readClient: readClient, writeClient: writeClient}

	err := gi.Inject(cache)
	if err != nil {
		log.Fatal("Failed to inject redis cache", err)
	}

	return cache
}

// StoreSnapshot replaces the latest published snapshot of the account.
func (r *RedisCache) StoreSnapshot(ctx context.Context, snapshot *datamodel.AccountSnapshot) error {
	key := fmt.Sprintf(redisutils.REDIS_KEY_ACCOUNT_SNAPSHOT, snapshot.Account)

	data, err := json.Marshal(snapshot)
	if err != nil {
		log.WithError(err).Error("failed to marshal account snapshot")

		return err
	}

	err = r.writeClient.Set(ctx, key, string(data), 0).Err()
	if err != nil {
		log.WithError(err).WithField("key", key).Error("failed to store account snapshot in redis")

		return err
	}

	return nil
}

func (r *RedisCache) GetSnapshot(ctx context.Context, account string) (*datamodel.AccountSnapshot, error) {
	key := fmt.Sprintf(redisutils.REDIS_KEY_ACCOUNT_SNAPSHOT, account)

	val, err := r.readClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}

		log.WithError(err).WithField("key", key).Error("failed to get account snapshot from redis")

		return nil, err
	}

	snapshot := new(datamodel.AccountSnapshot)

	err = json.Unmarshal([]byte(val), snapshot)
	if err != nil {
		log.WithError(err).WithField("key", key).Error("failed to unmarshal account snapshot")

		return nil, err
	}

	return snapshot, nil
}

// AddActionResult prepends the result to the account history and trims it to MaxStoredActionResults.
func (r *RedisCache) AddActionResult(ctx context.Context, account string, result *datamodel.ActionResult) error {
	key := fmt.Sprintf(redisutils.REDIS_KEY_ACCOUNT_ACTION_RESULTS, account)

	data, err := json.Marshal(result)
	if err != nil {
		log.WithError(err).Error("failed to marshal action result")

		return err
	}

	err = r.writeClient.LPush(ctx, key, string(data)).Err()
	if err != nil {
		log.WithError(err).WithField("key", key).Error("failed to add action result to redis")

		return err
	}

	err = r.writeClient.LTrim(ctx, key, 0, redisutils.MaxStoredActionResults-1).Err()
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("failed to trim action results")
	}

	return nil
}

// GetActionResults returns up to limit results, newest first.
func (r *RedisCache) GetActionResults(ctx context.Context, account string, limit int64) ([]*datamodel.ActionResult, error) {
	key := fmt.Sprintf(redisutils.REDIS_KEY_ACCOUNT_ACTION_RESULTS, account)

	if limit <= 0 || limit > redisutils.MaxStoredActionResults {
		limit = redisutils.MaxStoredActionResults
	}

	vals, err := r.readClient.LRange(ctx, key, 0, limit-1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.WithError(err).WithField("key", key).Error("failed to get action results from redis")

		return nil, err
	}

	results := make([]*datamodel.ActionResult, 0, len(vals))

	for _, val := range vals {
		result := new(datamodel.ActionResult)

		err = json.Unmarshal([]byte(val), result)
		if err != nil {
			log.WithError(err).WithField("key", key).Error("failed to unmarshal action result")

			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}
