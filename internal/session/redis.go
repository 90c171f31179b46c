package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"movie-catalog/internal/model"
	"movie-catalog/internal/utils"
)

const keyPrefix = "sess:"

// RedisStore keeps session snapshots in Redis with a TTL, so sessions
// survive process restarts and are shared across instances.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, u model.User) (string, error) {
	token := utils.NewSessionToken()
	payload, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (model.User, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return model.User{}, ErrNoSession
	}
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := json.Unmarshal(payload, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	n, err := s.rdb.Del(ctx, keyPrefix+token).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoSession
	}
	return nil
}
