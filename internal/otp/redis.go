package otp

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "otp:"

// RedisStore backs the issuer with an expiring redis key per email.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, redisKeyPrefix+key, value, ttl).Err()
}

func (s *RedisStore) Consume(ctx context.Context, key, value string) (bool, error) {
	stored, err := s.rdb.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if stored != value {
		return false, nil
	}

	if err := s.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return false, err
	}
	return true, nil
}
