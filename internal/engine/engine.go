// Package engine is the narrow facade over the embedded storage
// engine backing a single keyspace. It isolates the rest of the core
// from any particular third-party engine.
package engine

import "context"

// Maybe is the three-state result of a lookup: present, absent, or
// error. It deliberately avoids collapsing "absent" into a zero value
// the way a bare (nil, nil) return would.
type Maybe struct {
	Value   []byte
	Present bool
}

// Op is one write in a batch: either a Put or a Remove. Remove alone
// decides which: true deletes Key, false upserts Key/Value (a nil
// Value is stored as an empty value).
type Op struct {
	Key    []byte
	Value  []byte
	Remove bool
}

// PutOp builds a batch entry that upserts key/value.
func PutOp(key, value []byte) Op { return Op{Key: key, Value: value} }

// RemoveOp builds a batch entry that deletes key.
func RemoveOp(key []byte) Op { return Op{Key: key, Remove: true} }

// Engine is the contract any embedded engine must satisfy to back a
// keyspace. Implementations must be safe for concurrent use: reads
// and writes may proceed concurrently across goroutines.
type Engine interface {
	// Get returns the value for key, or a Maybe with Present=false if
	// absent. It never returns an error for a missing key — absence
	// is represented in the Maybe, not the error.
	Get(ctx context.Context, key []byte) (Maybe, error)

	// Put upserts key/value, silently replacing any prior value.
	Put(ctx context.Context, key, value []byte) error

	// Remove deletes key and reports whether a prior value existed.
	Remove(ctx context.Context, key []byte) (Maybe, error)

	// ApplyBatch applies ops atomically with respect to concurrent
	// readers of this engine instance.
	ApplyBatch(ctx context.Context, ops []Op) error

	// Clear removes all records but preserves the engine and its
	// on-disk location.
	Clear(ctx context.Context) error

	// Close releases resources held by the engine. After Close the
	// engine is unusable.
	Close() error
}

// Opener opens or creates persistent engine state at dir. Opening an
// existing directory must be idempotent across process restarts.
type Opener func(dir string) (Engine, error)
