// Package cache provides byte-level caching for rendered artifacts.
//
// Rendering a graph through Graphviz is the one expensive step in the
// pipeline, so `lotmap render` keys finished artifacts by a hash of the
// graph document plus the render options and skips re-rendering unchanged
// graphs. Three backends are provided: FileCache for local CLI use,
// RedisCache for shared deployments, and NullCache to disable caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is the interface all backends implement.
// A miss is reported via the bool, not an error; errors are reserved for
// backend failures (unreadable directory, unreachable server).
type Cache interface {
	// Get retrieves the value for key. The bool reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash returns the SHA-256 of data as a 64-character hex string.
// Used to derive stable cache keys from graph documents.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactKey builds the cache key for a rendered artifact.
// graphHash is the [Hash] of the exported graph document; format is the
// output format ("svg", "png", "dot"). Different formats of the same graph
// cache independently.
func ArtifactKey(graphHash, format string) string {
	return fmt.Sprintf("artifact:%s:%s", format, graphHash)
}
