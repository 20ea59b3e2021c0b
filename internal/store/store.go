// Package store persists user preferences and saved cities in a small
// key-value store. Values are JSON documents under fixed keys.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pixel-weather/internal/config"
)

var ErrKeyNotFound = errors.New("key not found")

// KV is an opaque byte store. Get returns ErrKeyNotFound for absent keys and
// Delete of an absent key is not an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New opens the backend selected by cfg.Driver.
func New(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (KV, error) {
	switch strings.ToLower(cfg.Driver) {
	case "memory":
		return NewMemory(), nil
	case "sqlite":
		return NewSQLite(cfg.Path, logger)
	case "redis":
		return NewRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
