package keyspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumpstors-labs/keepstore/internal/engine"
	"github.com/dumpstors-labs/keepstore/internal/storeerr"
)

func openTestKeyspace(t *testing.T) *Keyspace {
	t.Helper()
	ks, err := Open(engine.NewMemory, t.TempDir(), "test-ks")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ks.Close() })
	return ks
}

func TestInsertThenGet(t *testing.T) {
	ctx := context.Background()
	ks := openTestKeyspace(t)

	require.NoError(t, ks.Insert(ctx, Record{Key: []byte("k"), Value: []byte("v1")}))
	rec, err := ks.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), rec.Value)
}

func TestInsertUpsertsLastWriteWins(t *testing.T) {
	ctx := context.Background()
	ks := openTestKeyspace(t)

	require.NoError(t, ks.Insert(ctx, Record{Key: []byte("k"), Value: []byte("v1")}))
	require.NoError(t, ks.Insert(ctx, Record{Key: []byte("k"), Value: []byte("v2")}))

	rec, err := ks.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), rec.Value)
}

func TestGetMissingKeyIsKeyNotFound(t *testing.T) {
	ctx := context.Background()
	ks := openTestKeyspace(t)

	_, err := ks.Get(ctx, []byte("missing"))
	require.Error(t, err)
	assert.True(t, errorsIsKind(err, storeerr.KindKeyNotFound))
}

func TestDeleteMissingKeyIsKeyNotFound(t *testing.T) {
	ctx := context.Background()
	ks := openTestKeyspace(t)

	err := ks.Delete(ctx, []byte("missing"))
	require.Error(t, err)
	assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(err))
}

func TestDeletePresentKeySucceeds(t *testing.T) {
	ctx := context.Background()
	ks := openTestKeyspace(t)

	require.NoError(t, ks.Insert(ctx, Record{Key: []byte("k"), Value: []byte("v")}))
	require.NoError(t, ks.Delete(ctx, []byte("k")))

	_, err := ks.Get(ctx, []byte("k"))
	assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(err))
}

// TestBatchDeleteSkipsMissingKeys asserts a load-bearing asymmetry:
// unlike single Delete, BatchDelete never reports KeyNotFound for an
// absent key.
func TestBatchDeleteSkipsMissingKeys(t *testing.T) {
	ctx := context.Background()
	ks := openTestKeyspace(t)

	require.NoError(t, ks.Insert(ctx, Record{Key: []byte("present"), Value: []byte("v")}))
	err := ks.BatchDelete(ctx, [][]byte{[]byte("present"), []byte("absent")})
	require.NoError(t, err)

	_, err = ks.Get(ctx, []byte("present"))
	assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(err))
}

func TestBatchInsertThenBatchDeleteYieldsKeyNotFoundForAll(t *testing.T) {
	ctx := context.Background()
	ks := openTestKeyspace(t)

	records := []Record{
		{Key: []byte("foo"), Value: []byte("bar")},
		{Key: []byte("doo"), Value: []byte("dar")},
	}
	require.NoError(t, ks.BatchInsert(ctx, records))
	require.NoError(t, ks.BatchDelete(ctx, [][]byte{[]byte("foo"), []byte("doo")}))

	for _, r := range records {
		_, err := ks.Get(ctx, r.Key)
		assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(err))
	}
}

func TestTruncatePreservesKeyspaceRemovesRecords(t *testing.T) {
	ctx := context.Background()
	ks := openTestKeyspace(t)

	require.NoError(t, ks.Insert(ctx, Record{Key: []byte("k"), Value: []byte("v")}))
	require.NoError(t, ks.Truncate(ctx))

	_, err := ks.Get(ctx, []byte("k"))
	assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(err))
	assert.Equal(t, "test-ks", ks.Name())
}

func errorsIsKind(err error, k storeerr.Kind) bool {
	return storeerr.KindOf(err) == k
}
