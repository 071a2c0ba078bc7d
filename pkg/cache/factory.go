package cache

import (
	"context"
	"fmt"
	"time"
)

// Config selects and configures a cache driver.
type Config struct {
	Driver string
	TTL    time.Duration
	Size   int
	Redis  RedisConfig
}

// New builds the cache named by cfg.Driver. A zero TTL disables caching.
func New(ctx context.Context, cfg Config) (Cache, error) {
	if cfg.TTL <= 0 {
		return Nop{}, nil
	}

	switch cfg.Driver {
	case "", DriverNone:
		return Nop{}, nil
	case DriverMemory:
		return NewMemory(cfg.Size, cfg.TTL), nil
	case DriverRedis:
		rc := cfg.Redis
		rc.TTL = cfg.TTL
		return NewRedis(ctx, rc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
