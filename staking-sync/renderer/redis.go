package renderer

import (
	"context"

	"puck-staking/caching"
	"puck-staking/goutils/datamodel"
)

// RedisRenderer keeps the latest snapshot and the action history of the account in redis.
type RedisRenderer struct {
	cache   caching.DbCache
	account string
}

var _ Renderer = (*RedisRenderer)(nil)

func NewRedisRenderer(cache caching.DbCache, account string) *RedisRenderer {
	return &RedisRenderer{cache: cache, account: account}
}

func (r *RedisRenderer) PublishSnapshot(ctx context.Context, snapshot *datamodel.AccountSnapshot) error {
	return r.cache.StoreSnapshot(ctx, snapshot)
}

func (r *RedisRenderer) PublishActionResult(ctx context.Context, result *datamodel.ActionResult) error {
	return r.cache.AddActionResult(ctx, r.account, result)
}
