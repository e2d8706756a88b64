// Package kv defines the key-value contract used by the response cache.
package kv

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrKeyNotFound signals a missing key.
var ErrKeyNotFound = errors.New("key not found")

// Op identifies the failed store operation in an Error.
type Op string

// Store operations.
const (
	OpGet Op = "get"
	OpSet Op = "set"
)

// Error wraps a backend failure with the operation that hit it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("kv %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Store is a TTL-capable key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close()
}
