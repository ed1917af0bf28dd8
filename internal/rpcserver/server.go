// Package rpcserver implements the Store gRPC service over
// internal/store, including the streaming multi-get and the error
// taxonomy projection delegated to internal/storeerr.
package rpcserver

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/dumpstors-labs/keepstore/internal/keyspace"
	"github.com/dumpstors-labs/keepstore/internal/storeerr"
	"github.com/dumpstors-labs/keepstore/internal/storepb"
	"github.com/dumpstors-labs/keepstore/internal/store"
)

// getKeysChannelCapacity bounds the producer/consumer channel used by
// the streaming multi-get.
const getKeysChannelCapacity = 4

// Server implements storepb.StoreServer over a *store.Store.
type Server struct {
	storepb.UnimplementedStoreServer

	st       *store.Store
	selfAddr string
}

// New constructs a Server. selfAddr is reported verbatim by the Nodes
// stub and otherwise unused.
func New(st *store.Store, selfAddr string) *Server {
	return &Server{st: st, selfAddr: selfAddr}
}

func (s *Server) Ping(context.Context, *storepb.Empty) (*storepb.Empty, error) {
	return &storepb.Empty{}, nil
}

func (s *Server) Nodes(context.Context, *storepb.Empty) (*storepb.NodesResponse, error) {
	return &storepb.NodesResponse{SelfAddr: s.selfAddr}, nil
}

func (s *Server) ListKeyspaces(ctx context.Context, _ *storepb.Empty) (*storepb.ListKeyspacesResponse, error) {
	names := s.st.ListKeyspaces(ctx)
	resp := &storepb.ListKeyspacesResponse{Keyspaces: make([]*storepb.Keyspace, len(names))}
	for i, n := range names {
		resp.Keyspaces[i] = &storepb.Keyspace{Name: n}
	}
	return resp, nil
}

func (s *Server) GetKeyspace(ctx context.Context, req *storepb.KeyspaceNameRequest) (*storepb.Keyspace, error) {
	ks, err := s.st.GetKeyspace(ctx, req.Keyspace)
	if err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Keyspace{Name: ks.Name()}, nil
}

func (s *Server) CreateKeyspace(ctx context.Context, req *storepb.Keyspace) (*storepb.Empty, error) {
	if _, err := s.st.CreateKeyspace(ctx, req.Name); err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Empty{}, nil
}

func (s *Server) DeleteKeyspace(ctx context.Context, req *storepb.KeyspaceNameRequest) (*storepb.Empty, error) {
	if err := s.st.DeleteKeyspace(ctx, req.Keyspace); err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Empty{}, nil
}

func (s *Server) TruncateKeyspace(ctx context.Context, req *storepb.KeyspaceNameRequest) (*storepb.Empty, error) {
	if err := s.st.TruncateKeyspace(ctx, req.Keyspace); err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Empty{}, nil
}

func (s *Server) GetKey(ctx context.Context, req *storepb.GetKeyRequest) (*storepb.Record, error) {
	ks, err := s.st.GetKeyspace(ctx, req.Keyspace)
	if err != nil {
		return nil, storeerr.ToStatus(err)
	}
	rec, err := ks.Get(ctx, req.Key)
	if err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Record{Key: rec.Key, Value: rec.Value}, nil
}

func (s *Server) InsertKey(ctx context.Context, req *storepb.InsertKeyRequest) (*storepb.Empty, error) {
	if req.Record == nil {
		return nil, storeerr.ToStatus(storeerr.Newf(storeerr.KindInvalidArgument, "insert request missing record"))
	}
	ks, err := s.st.GetKeyspace(ctx, req.Keyspace)
	if err != nil {
		return nil, storeerr.ToStatus(err)
	}
	if err := ks.Insert(ctx, keyspace.Record{Key: req.Record.Key, Value: req.Record.Value}); err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Empty{}, nil
}

func (s *Server) DeleteKey(ctx context.Context, req *storepb.DeleteKeyRequest) (*storepb.Empty, error) {
	ks, err := s.st.GetKeyspace(ctx, req.Keyspace)
	if err != nil {
		return nil, storeerr.ToStatus(err)
	}
	if err := ks.Delete(ctx, req.Key); err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Empty{}, nil
}

func (s *Server) InsertKeys(ctx context.Context, req *storepb.InsertKeysRequest) (*storepb.Empty, error) {
	ks, err := s.st.GetKeyspace(ctx, req.Keyspace)
	if err != nil {
		return nil, storeerr.ToStatus(err)
	}
	recs := make([]keyspace.Record, len(req.Records))
	for i, r := range req.Records {
		recs[i] = keyspace.Record{Key: r.Key, Value: r.Value}
	}
	if err := ks.BatchInsert(ctx, recs); err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Empty{}, nil
}

func (s *Server) DeleteKeys(ctx context.Context, req *storepb.DeleteKeysRequest) (*storepb.Empty, error) {
	ks, err := s.st.GetKeyspace(ctx, req.Keyspace)
	if err != nil {
		return nil, storeerr.ToStatus(err)
	}
	if err := ks.BatchDelete(ctx, req.Keys); err != nil {
		return nil, storeerr.ToStatus(err)
	}
	return &storepb.Empty{}, nil
}

// GetKeys is the streaming multi-get RPC. It resolves the keyspace
// once, then hands off to a producer goroutine so that the Store lock
// acquired by GetKeyspace is long released before records start
// flowing — a slow consumer never holds up unrelated clients.
func (s *Server) GetKeys(req *storepb.GetKeysRequest, stream storepb.Store_GetKeysServer) error {
	ctx := stream.Context()

	// Step 1-2: resolve under the Store lock, then the lock is
	// released as soon as GetKeyspace returns (internal/store.Store
	// only holds its mutex for the map lookup itself).
	ks, err := s.st.GetKeyspace(ctx, req.Keyspace)
	if err != nil {
		return storeerr.ToStatus(err)
	}

	type item struct {
		rec *storepb.Record
		err error
	}
	items := make(chan item, getKeysChannelCapacity)

	// Step 3: producer task, bound to req.Keys, emitting in order.
	go func() {
		defer close(items)
		for _, key := range req.Keys {
			rec, err := ks.Get(ctx, key)
			if err != nil {
				select {
				case items <- item{err: err}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case items <- item{rec: &storepb.Record{Key: rec.Key, Value: rec.Value}}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for it := range items {
		if it.err != nil {
			return storeerr.ToStatus(it.err)
		}
		if err := stream.Send(it.rec); err != nil {
			// Client disconnected or cancelled; the producer goroutine
			// observes ctx.Done() on its next send attempt and exits.
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Printf("rpcserver: GetKeys send failed for keyspace %q: %v", req.Keyspace, err)
			return err
		}
	}
	return nil
}
