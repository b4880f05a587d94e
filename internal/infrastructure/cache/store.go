package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/pkg/config"
)

// Store is a string key-value cache with per-entry expiration
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New builds the store selected by CACHE_DRIVER
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Cache.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		return NewRedisStore(ctx, &cfg.Redis)
	case "none":
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}

// NopStore never stores anything
type NopStore struct{}

func (NopStore) Get(context.Context, string) (string, bool, error)        { return "", false, nil }
func (NopStore) Set(context.Context, string, string, time.Duration) error { return nil }
func (NopStore) Delete(context.Context, string) error                     { return nil }
func (NopStore) Close() error                                             { return nil }
