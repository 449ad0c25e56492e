package manager

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/dags-/jenkbadge/badge"
)

const redisPrefix = "badge:"

// RedisStore shares cached badges between several server processes.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if e := client.Ping(ctx).Err(); e != nil {
		_ = client.Close()
		return nil, errors.Wrapf(e, "connect to redis at %s", addr)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (*badge.Data, bool, error) {
	raw, e := s.client.Get(ctx, redisPrefix+key).Bytes()
	if e == redis.Nil {
		return nil, false, nil
	}
	if e != nil {
		return nil, false, errors.Wrap(e, "redis get")
	}

	var data badge.Data
	if e := json.Unmarshal(raw, &data); e != nil {
		return nil, false, errors.Wrap(e, "decode cached badge")
	}
	return &data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, data *badge.Data, ttl time.Duration) error {
	raw, e := json.Marshal(data)
	if e != nil {
		return errors.Wrap(e, "encode badge")
	}
	return errors.Wrap(s.client.Set(ctx, redisPrefix+key, raw, ttl).Err(), "redis set")
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
