// Package cache provides the byte-oriented key/value cache used for backend listings.
package cache

import (
	"context"
	"errors"
)

const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// ErrUnknownDriver is returned by New for unsupported driver names.
var ErrUnknownDriver = errors.New("unknown cache driver")

// Cache stores opaque values with a driver-defined TTL.
type Cache interface {
	// Get returns ok=false on a miss. err is reserved for transport failures.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error          { return nil }
func (Nop) Close() error                                       { return nil }
