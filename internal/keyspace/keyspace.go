// Package keyspace implements the per-keyspace record operations: a
// handle to one open engine instance plus its name, enforcing single-
// and batch-record semantics on top of the narrow engine.Engine
// contract.
package keyspace

import (
	"context"
	"sync/atomic"

	"github.com/dumpstors-labs/keepstore/internal/engine"
	"github.com/dumpstors-labs/keepstore/internal/storeerr"
)

// Record is a key/value pair. Both fields are opaque byte sequences;
// an empty key is legal but discouraged.
type Record struct {
	Key   []byte
	Value []byte
}

// Keyspace wraps an open engine instance under a name. Callers who
// resolve a Keyspace (notably the streaming multi-get handler) can
// keep it alive beyond the lifetime of whatever lock protected the
// catalog lookup: Go's garbage collector makes an explicit refcount
// unnecessary, since the shared engine.Engine is simply kept alive by
// any goroutine still holding a reference to this Keyspace value.
type Keyspace struct {
	name   string
	eng    engine.Engine
	closed atomic.Bool
}

// Open constructs a Keyspace backed by an engine opened at dir via
// opener. The caller supplies name separately from dir so the catalog
// (internal/store) controls the name/path relationship.
func Open(opener engine.Opener, dir, name string) (*Keyspace, error) {
	eng, err := opener(dir)
	if err != nil {
		return nil, storeerr.Wrap(err, "open engine for keyspace %q", name)
	}
	return &Keyspace{name: name, eng: eng}, nil
}

// Name returns the keyspace's name.
func (k *Keyspace) Name() string { return k.name }

// Close releases the underlying engine. Safe to call more than once.
func (k *Keyspace) Close() error {
	if k.closed.Swap(true) {
		return nil
	}
	return k.eng.Close()
}

// Get resolves a single key. An absent key is reported as
// KeyNotFound, not folded into a zero value.
func (k *Keyspace) Get(ctx context.Context, key []byte) (Record, error) {
	m, err := k.eng.Get(ctx, key)
	if err != nil {
		return Record{}, storeerr.Wrap(err, "get key in keyspace %q", k.name)
	}
	if !m.Present {
		return Record{}, storeerr.Newf(storeerr.KindKeyNotFound, "key not found in keyspace %q", k.name)
	}
	return Record{Key: key, Value: m.Value}, nil
}

// Insert upserts a record, silently replacing any prior value.
func (k *Keyspace) Insert(ctx context.Context, rec Record) error {
	if err := k.eng.Put(ctx, rec.Key, rec.Value); err != nil {
		return storeerr.Wrap(err, "insert into keyspace %q", k.name)
	}
	return nil
}

// Delete removes a single key, distinguishing presence: a missing key
// is KeyNotFound. This is the asymmetric half of the load-bearing
// delete/batch-delete distinction — see BatchDelete.
func (k *Keyspace) Delete(ctx context.Context, key []byte) error {
	m, err := k.eng.Remove(ctx, key)
	if err != nil {
		return storeerr.Wrap(err, "delete key in keyspace %q", k.name)
	}
	if !m.Present {
		return storeerr.Newf(storeerr.KindKeyNotFound, "key not found in keyspace %q", k.name)
	}
	return nil
}

// BatchInsert upserts records atomically (all-or-nothing visible to
// concurrent readers of this keyspace).
func (k *Keyspace) BatchInsert(ctx context.Context, records []Record) error {
	ops := make([]engine.Op, len(records))
	for i, r := range records {
		ops[i] = engine.PutOp(r.Key, r.Value)
	}
	if err := k.eng.ApplyBatch(ctx, ops); err != nil {
		return storeerr.Wrap(err, "batch insert into keyspace %q", k.name)
	}
	return nil
}

// BatchDelete removes keys atomically. Unlike Delete, missing keys
// are silently skipped — this asymmetry is intentional and tested.
func (k *Keyspace) BatchDelete(ctx context.Context, keys [][]byte) error {
	ops := make([]engine.Op, len(keys))
	for i, key := range keys {
		ops[i] = engine.RemoveOp(key)
	}
	if err := k.eng.ApplyBatch(ctx, ops); err != nil {
		return storeerr.Wrap(err, "batch delete in keyspace %q", k.name)
	}
	return nil
}

// Truncate removes all records but preserves the keyspace entry and
// its on-disk directory.
func (k *Keyspace) Truncate(ctx context.Context) error {
	if err := k.eng.Clear(ctx); err != nil {
		return storeerr.Wrap(err, "truncate keyspace %q", k.name)
	}
	return nil
}
