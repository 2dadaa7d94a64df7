package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisStorage stores values as plain redis strings without expiry
type RedisStorage struct {
	rdb *redis.Client
}

// NewRedisStorage connects to addr, which is either host:port or a redis:// URL, and pings it
func NewRedisStorage(ctx context.Context, addr string) (*RedisStorage, error) {
	var opt *redis.Options
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, &Error{Backend: "redis", Op: "connect", Key: addr, Cause: err}
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: addr}
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, &Error{Backend: "redis", Op: "connect", Key: addr, Cause: err}
	}
	return &RedisStorage{rdb: rdb}, nil
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", &Error{Backend: "redis", Op: "get", Key: key, Cause: err}
	}
	return v, nil
}

func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return &Error{Backend: "redis", Op: "set", Key: key, Cause: err}
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return &Error{Backend: "redis", Op: "delete", Key: key, Cause: err}
	}
	return nil
}

func (r *RedisStorage) Close() error {
	return r.rdb.Close()
}
