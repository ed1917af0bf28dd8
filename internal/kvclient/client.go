// Package kvclient is a thin Go client for the Store RPC service,
// used by cmd/storectl.
package kvclient

import (
	"context"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dumpstors-labs/keepstore/internal/storepb"
)

// Client wraps a storepb.StoreClient with the endpoint connection.
type Client struct {
	conn *grpc.ClientConn
	rpc  storepb.StoreClient
}

// DefaultEndpoint is the CLI's default target when none is given.
const DefaultEndpoint = "localhost:4242"

// Dial connects to endpoint ("host:port") using the storewire codec.
func Dial(ctx context.Context, endpoint string) (*Client, error) {
	conn, err := grpc.NewClient(
		endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(storepb.Codec{})),
	)
	if err != nil {
		return nil, fmt.Errorf("kvclient: dial %q: %w", endpoint, err)
	}
	return &Client{conn: conn, rpc: storepb.NewStoreClient(conn)}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }

// Ping checks liveness.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.rpc.Ping(ctx, &storepb.Empty{})
	return err
}

// ListKeyspaces returns the sorted list of keyspace names.
func (c *Client) ListKeyspaces(ctx context.Context) ([]string, error) {
	resp, err := c.rpc.ListKeyspaces(ctx, &storepb.Empty{})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(resp.Keyspaces))
	for i, ks := range resp.Keyspaces {
		names[i] = ks.Name
	}
	return names, nil
}

// GetKeyspace checks whether name exists, returning its name on success.
func (c *Client) GetKeyspace(ctx context.Context, name string) (string, error) {
	resp, err := c.rpc.GetKeyspace(ctx, &storepb.KeyspaceNameRequest{Keyspace: name})
	if err != nil {
		return "", err
	}
	return resp.Name, nil
}

// CreateKeyspace creates a new keyspace named name.
func (c *Client) CreateKeyspace(ctx context.Context, name string) error {
	_, err := c.rpc.CreateKeyspace(ctx, &storepb.Keyspace{Name: name})
	return err
}

// DeleteKeyspace deletes the keyspace named name.
func (c *Client) DeleteKeyspace(ctx context.Context, name string) error {
	_, err := c.rpc.DeleteKeyspace(ctx, &storepb.KeyspaceNameRequest{Keyspace: name})
	return err
}

// TruncateKeyspace removes all records from the named keyspace.
func (c *Client) TruncateKeyspace(ctx context.Context, name string) error {
	_, err := c.rpc.TruncateKeyspace(ctx, &storepb.KeyspaceNameRequest{Keyspace: name})
	return err
}

// Get fetches a single value.
func (c *Client) Get(ctx context.Context, keyspace string, key []byte) ([]byte, error) {
	resp, err := c.rpc.GetKey(ctx, &storepb.GetKeyRequest{Keyspace: keyspace, Key: key})
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// Insert upserts a single key/value pair.
func (c *Client) Insert(ctx context.Context, keyspace string, key, value []byte) error {
	_, err := c.rpc.InsertKey(ctx, &storepb.InsertKeyRequest{
		Keyspace: keyspace,
		Record:   &storepb.Record{Key: key, Value: value},
	})
	return err
}

// Delete removes a single key.
func (c *Client) Delete(ctx context.Context, keyspace string, key []byte) error {
	_, err := c.rpc.DeleteKey(ctx, &storepb.DeleteKeyRequest{Keyspace: keyspace, Key: key})
	return err
}

// InsertBatch upserts many records atomically.
func (c *Client) InsertBatch(ctx context.Context, keyspace string, records map[string][]byte) error {
	pbRecords := make([]*storepb.Record, 0, len(records))
	for k, v := range records {
		pbRecords = append(pbRecords, &storepb.Record{Key: []byte(k), Value: v})
	}
	_, err := c.rpc.InsertKeys(ctx, &storepb.InsertKeysRequest{Keyspace: keyspace, Records: pbRecords})
	return err
}

// DeleteBatch removes many keys; absent keys are silently skipped.
func (c *Client) DeleteBatch(ctx context.Context, keyspace string, keys [][]byte) error {
	_, err := c.rpc.DeleteKeys(ctx, &storepb.DeleteKeysRequest{Keyspace: keyspace, Keys: keys})
	return err
}

// GetMany streams records for keys in order, invoking fn for each. If
// the server reports a per-key error the stream terminates and
// GetMany returns that error; records already delivered to fn remain
// valid.
func (c *Client) GetMany(ctx context.Context, keyspace string, keys [][]byte, fn func(key, value []byte) error) error {
	stream, err := c.rpc.GetKeys(ctx, &storepb.GetKeysRequest{Keyspace: keyspace, Keys: keys})
	if err != nil {
		return err
	}
	for {
		rec, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err := fn(rec.Key, rec.Value); err != nil {
			return err
		}
	}
}

// WithTimeout is a convenience wrapper around context.WithTimeout,
// returning a context.CancelFunc the caller must invoke.
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}
