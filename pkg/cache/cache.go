// Package cache provides pluggable byte-level caching backends.
//
// The [Cache] interface abstracts over storage so that callers (most
// notably the Google Fonts stylesheet client) can run with a local file
// cache in the CLI, Redis or MongoDB in server deployments, or no cache
// at all in tests.
//
// Backends:
//   - [FileCache]: file-per-entry storage for CLI usage
//   - [RedisCache]: Redis-backed storage for multi-instance deployments
//   - [MongoCache]: MongoDB-backed storage, same concern as Redis
//   - [NullCache]: no-op backend for tests or --no-cache runs
//
// Entries carry an optional TTL. A TTL of zero means the entry never
// expires. Expired entries are treated as misses and removed lazily.
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss is returned when an item is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)

// Cache is the interface implemented by all caching backends.
//
// Implementations must treat expired entries as misses. Get returns
// (nil, false, nil) for a miss; errors are reserved for backend
// failures (I/O, connection loss), never for absent keys.
type Cache interface {
	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key with the given TTL.
	// A TTL of zero stores the entry without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
