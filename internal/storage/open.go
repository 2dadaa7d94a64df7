package storage

import (
	"context"
	"fmt"
)

// Backend names a storage implementation
type Backend string

const (
	BackendFile     Backend = "file"
	BackendMemory   Backend = "memory"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

// Options selects and configures a backend
type Options struct {
	Backend     Backend
	Path        string
	RedisURL    string
	DatabaseURL string
}

// Open returns the backend named by opts
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStorage(opts.Path)
	case BackendMemory:
		return NewMemoryStorage(), nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis backend requires a redis URL")
		}
		return NewRedisStorage(ctx, opts.RedisURL)
	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres backend requires a database URL")
		}
		return NewPostgresStorage(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", opts.Backend)
	}
}
