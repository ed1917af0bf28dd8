package engine

import (
	"context"
	"errors"
	"runtime"

	"github.com/cockroachdb/pebble"
)

// PebbleEngine adapts a cockroachdb/pebble LSM database to the Engine
// contract.
type PebbleEngine struct {
	db *pebble.DB
}

// Open opens or creates a pebble database at dir. Opening an existing
// directory recovers its WAL and manifest, so repeated calls against
// the same directory are idempotent across process restarts.
//
// A finalizer backs the returned Engine's lifetime with the garbage
// collector rather than an explicit refcount: a caller that drops a
// keyspace from its catalog while another goroutine still holds this
// Engine does not force-close the pebble handle out from under it —
// the WAL and manifest stay open until the last reference is gone and
// the finalizer runs. Close cancels the finalizer, so an orderly
// shutdown still closes synchronously rather than waiting on the GC.
func Open(dir string) (Engine, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	e := &PebbleEngine{db: db}
	runtime.SetFinalizer(e, (*PebbleEngine).finalize)
	return e, nil
}

func (e *PebbleEngine) finalize() {
	_ = e.db.Close()
}

func (e *PebbleEngine) Get(_ context.Context, key []byte) (Maybe, error) {
	v, closer, err := e.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return Maybe{}, nil
	}
	if err != nil {
		return Maybe{}, err
	}
	// Copy out: the slice pebble returns is only valid until closer.Close.
	value := append([]byte(nil), v...)
	if cerr := closer.Close(); cerr != nil {
		return Maybe{}, cerr
	}
	return Maybe{Value: value, Present: true}, nil
}

func (e *PebbleEngine) Put(_ context.Context, key, value []byte) error {
	return e.db.Set(key, value, pebble.Sync)
}

func (e *PebbleEngine) Remove(ctx context.Context, key []byte) (Maybe, error) {
	prior, err := e.Get(ctx, key)
	if err != nil {
		return Maybe{}, err
	}
	if !prior.Present {
		return Maybe{}, nil
	}
	if err := e.db.Delete(key, pebble.Sync); err != nil {
		return Maybe{}, err
	}
	return prior, nil
}

func (e *PebbleEngine) ApplyBatch(_ context.Context, ops []Op) error {
	batch := e.db.NewBatch()
	defer batch.Close()
	for _, op := range ops {
		if op.Remove {
			if err := batch.Delete(op.Key, nil); err != nil {
				return err
			}
			continue
		}
		if err := batch.Set(op.Key, op.Value, nil); err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

// Clear removes every record while preserving the engine and its
// on-disk directory. Pebble has no single "truncate" primitive, so
// records are removed via a full-range iteration batched into
// deletes.
func (e *PebbleEngine) Clear(_ context.Context) error {
	iter, err := e.db.NewIter(nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	batch := e.db.NewBatch()
	defer batch.Close()
	for iter.First(); iter.Valid(); iter.Next() {
		if err := batch.Delete(iter.Key(), nil); err != nil {
			return err
		}
	}
	if err := iter.Error(); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

func (e *PebbleEngine) Close() error {
	runtime.SetFinalizer(e, nil)
	return e.db.Close()
}
