// Package cache stores computed layouts and rendered diagrams between runs.
//
// Rendering a large tree is fast, but the CLI is often pointed at the same
// file repeatedly (for example from an editor hook). Results are keyed by a
// hash of the input forest plus every option that changes the output, so a
// hit is always byte-identical to a fresh computation.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, sharded by the
//     first two hex digits of the key hash.
//   - [NullCache]: stores nothing; used with --no-cache and in tests.
//
// # Keys
//
// A [Keyer] turns a tree hash and options into cache keys. [DefaultKeyer]
// produces "layout:<sha256>" and "artifact:<sha256>" keys; [ScopedKeyer]
// prefixes them, which the CLI uses to separate entries written by different
// program versions.
package cache

import (
	"context"
	"time"
)

// Time-to-live values for cached entries.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A missing or
	// expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// LayoutKeyOpts holds the options that change a layout.
type LayoutKeyOpts struct {
	WrapThreshold int  `json:"wrap"`
	NodePadding   int  `json:"node_pad"`
	RowPadding    int  `json:"row_pad"`
	LineWidth     int  `json:"line_width"`
	LinePadding   int  `json:"line_pad"`
	Arrows        bool `json:"arrows,omitempty"`
}

// ArtifactKeyOpts identifies one output format of a layout.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key of the shape list for a tree and options.
	LayoutKey(treeHash string, opts LayoutKeyOpts) string
	// ArtifactKey returns the key of a rendered output derived from a layout.
	ArtifactKey(layoutKey string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes every key component.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:" followed by the hash of the tree and options.
func (DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", treeHash, opts)
}

// ArtifactKey returns "artifact:" followed by the hash of the layout key and
// format.
func (DefaultKeyer) ArtifactKey(layoutKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutKey, opts)
}
