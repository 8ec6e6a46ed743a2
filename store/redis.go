package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisPrefix namespaces every record so the store can share a database.
const redisPrefix = "wealthpilot:"

// RedisStore backs the repository with a Redis database, for setups where
// the same records are read from more than one machine.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore connects to the Redis server at addr.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ctx:    context.Background(),
	}
}

func (r *RedisStore) Get(key string) ([]byte, bool, error) {
	raw, err := r.client.Get(r.ctx, redisPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisStore) Set(key string, value []byte) error {
	return r.client.Set(r.ctx, redisPrefix+key, value, 0).Err()
}

func (r *RedisStore) Delete(key string) error {
	return r.client.Del(r.ctx, redisPrefix+key).Err()
}

func (r *RedisStore) Keys() ([]string, error) {
	full, err := r.client.Keys(r.ctx, redisPrefix+"*").Result()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(full))
	for i, k := range full {
		keys[i] = k[len(redisPrefix):]
	}
	return keys, nil
}
