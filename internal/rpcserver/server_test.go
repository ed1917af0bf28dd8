package rpcserver

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dumpstors-labs/keepstore/internal/engine"
	"github.com/dumpstors-labs/keepstore/internal/storeerr"
	"github.com/dumpstors-labs/keepstore/internal/storepb"
	"github.com/dumpstors-labs/keepstore/internal/store"
)

// newTestClient wires a Server backed by an in-memory store over an
// in-process bufconn listener.
func newTestClient(t *testing.T) storepb.StoreClient {
	t.Helper()

	st, err := store.Open(t.TempDir(), engine.NewMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer(grpc.ForceServerCodec(storepb.Codec{}))
	storepb.RegisterStoreServer(srv, New(st, "bufconn"))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(storepb.Codec{})),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return storepb.NewStoreClient(conn)
}

func TestPing(t *testing.T) {
	client := newTestClient(t)
	_, err := client.Ping(context.Background(), &storepb.Empty{})
	require.NoError(t, err)
}

func TestCreateGetDeleteKeyspaceLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateKeyspace(ctx, &storepb.Keyspace{Name: "ks1"})
	require.NoError(t, err)

	got, err := client.GetKeyspace(ctx, &storepb.KeyspaceNameRequest{Keyspace: "ks1"})
	require.NoError(t, err)
	assert.Equal(t, "ks1", got.Name)

	_, err = client.DeleteKeyspace(ctx, &storepb.KeyspaceNameRequest{Keyspace: "ks1"})
	require.NoError(t, err)

	_, err = client.GetKeyspace(ctx, &storepb.KeyspaceNameRequest{Keyspace: "ks1"})
	require.Error(t, err)
	assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(storeerr.FromStatus(err)))
}

func TestCreateKeyspaceTwiceFailsAlreadyExists(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateKeyspace(ctx, &storepb.Keyspace{Name: "dup"})
	require.NoError(t, err)

	_, err = client.CreateKeyspace(ctx, &storepb.Keyspace{Name: "dup"})
	require.Error(t, err)
	assert.Equal(t, storeerr.KindKeyspaceAlreadyExists, storeerr.KindOf(storeerr.FromStatus(err)))
}

func TestListKeyspacesSorted(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	for _, name := range []string{"b", "a", "c"} {
		_, err := client.CreateKeyspace(ctx, &storepb.Keyspace{Name: name})
		require.NoError(t, err)
	}

	resp, err := client.ListKeyspaces(ctx, &storepb.Empty{})
	require.NoError(t, err)
	names := make([]string, len(resp.Keyspaces))
	for i, ks := range resp.Keyspaces {
		names[i] = ks.Name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestInsertGetDeleteKey(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateKeyspace(ctx, &storepb.Keyspace{Name: "ks"})
	require.NoError(t, err)

	_, err = client.InsertKey(ctx, &storepb.InsertKeyRequest{
		Keyspace: "ks",
		Record:   &storepb.Record{Key: []byte("k"), Value: []byte("v")},
	})
	require.NoError(t, err)

	rec, err := client.GetKey(ctx, &storepb.GetKeyRequest{Keyspace: "ks", Key: []byte("k")})
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), rec.Value)

	_, err = client.DeleteKey(ctx, &storepb.DeleteKeyRequest{Keyspace: "ks", Key: []byte("k")})
	require.NoError(t, err)

	_, err = client.GetKey(ctx, &storepb.GetKeyRequest{Keyspace: "ks", Key: []byte("k")})
	require.Error(t, err)
	assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(storeerr.FromStatus(err)))
}

func TestInsertKeyWithNilRecordIsInvalidArgument(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateKeyspace(ctx, &storepb.Keyspace{Name: "ks"})
	require.NoError(t, err)

	_, err = client.InsertKey(ctx, &storepb.InsertKeyRequest{Keyspace: "ks", Record: nil})
	require.Error(t, err)
	assert.Equal(t, storeerr.KindInvalidArgument, storeerr.KindOf(storeerr.FromStatus(err)))
}

// TestBatchDeleteSkipsMissingKeysOverRPC mirrors the keyspace-level
// test but exercises it through the wire codec, confirming the
// asymmetry with single DeleteKey survives marshaling.
func TestBatchDeleteSkipsMissingKeysOverRPC(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateKeyspace(ctx, &storepb.Keyspace{Name: "ks"})
	require.NoError(t, err)
	_, err = client.InsertKeys(ctx, &storepb.InsertKeysRequest{
		Keyspace: "ks",
		Records:  []*storepb.Record{{Key: []byte("present"), Value: []byte("v")}},
	})
	require.NoError(t, err)

	_, err = client.DeleteKeys(ctx, &storepb.DeleteKeysRequest{
		Keyspace: "ks",
		Keys:     [][]byte{[]byte("present"), []byte("absent")},
	})
	require.NoError(t, err)

	_, err = client.DeleteKey(ctx, &storepb.DeleteKeyRequest{Keyspace: "ks", Key: []byte("absent")})
	require.Error(t, err)
	assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(storeerr.FromStatus(err)))
}

// TestGetKeysStreamsInOrder checks the ordering guarantee: records
// are delivered in the same order as the requested keys.
func TestGetKeysStreamsInOrder(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateKeyspace(ctx, &storepb.Keyspace{Name: "ks"})
	require.NoError(t, err)
	_, err = client.InsertKeys(ctx, &storepb.InsertKeysRequest{
		Keyspace: "ks",
		Records: []*storepb.Record{
			{Key: []byte("a"), Value: []byte("1")},
			{Key: []byte("b"), Value: []byte("2")},
			{Key: []byte("c"), Value: []byte("3")},
		},
	})
	require.NoError(t, err)

	stream, err := client.GetKeys(ctx, &storepb.GetKeysRequest{
		Keyspace: "ks",
		Keys:     [][]byte{[]byte("c"), []byte("a"), []byte("b")},
	})
	require.NoError(t, err)

	var got [][]byte
	for {
		rec, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, rec.Value)
	}
	assert.Equal(t, [][]byte{[]byte("3"), []byte("1"), []byte("2")}, got)
}

// TestGetKeysStreamTerminatesOnMissingKey checks the error path: a
// missing key mid-sequence ends the stream with NotFound, and no
// further records arrive.
func TestGetKeysStreamTerminatesOnMissingKey(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateKeyspace(ctx, &storepb.Keyspace{Name: "ks"})
	require.NoError(t, err)
	_, err = client.InsertKeys(ctx, &storepb.InsertKeysRequest{
		Keyspace: "ks",
		Records: []*storepb.Record{
			{Key: []byte("a"), Value: []byte("1")},
			{Key: []byte("c"), Value: []byte("3")},
		},
	})
	require.NoError(t, err)

	stream, err := client.GetKeys(ctx, &storepb.GetKeysRequest{
		Keyspace: "ks",
		Keys:     [][]byte{[]byte("a"), []byte("missing"), []byte("c")},
	})
	require.NoError(t, err)

	rec, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), rec.Value)

	_, err = stream.Recv()
	require.Error(t, err)
	assert.Equal(t, storeerr.KindKeyNotFound, storeerr.KindOf(storeerr.FromStatus(err)))
}

func TestNodesReportsSelfAddr(t *testing.T) {
	ctx := context.Background()

	st, err := store.Open(t.TempDir(), engine.NewMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer(grpc.ForceServerCodec(storepb.Codec{}))
	storepb.RegisterStoreServer(srv, New(st, "10.0.0.1:4242"))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(storepb.Codec{})),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client := storepb.NewStoreClient(conn)
	resp, err := client.Nodes(ctx, &storepb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:4242", resp.SelfAddr)
}
