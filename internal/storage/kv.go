// Package storage persists the small amount of client state that must
// survive a restart (the session token and the serialized user).
package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"takatrack-client/internal/config"
)

var (
	// ErrNotFound is returned by Get when the key is absent.
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt is returned when the backing data cannot be decoded.
	ErrCorrupt = errors.New("stored data is corrupt")
)

// KV is a durable string key-value store.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Open builds the backend selected by cfg.StorageDriver.
func Open(cfg config.Config) (KV, error) {
	switch cfg.StorageDriver {
	case config.StorageFile, "":
		log.Printf("💾 Session storage: file (%s)", cfg.StoragePath)
		return NewFileStore(cfg.StoragePath), nil
	case config.StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for postgres storage")
		}
		log.Println("💾 Session storage: postgres")
		return OpenPostgres(cfg.DatabaseURL)
	case config.StorageRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required for redis storage")
		}
		log.Println("💾 Session storage: redis")
		return OpenRedis(cfg.RedisURL)
	case config.StorageMemory:
		log.Println("⚠️  Session storage: memory (sessions will not survive a restart)")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
