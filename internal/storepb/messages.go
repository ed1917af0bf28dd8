package storepb

// Keyspace names one namespace in the catalog.
type Keyspace struct {
	Name string
}

func (m *Keyspace) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.Name)
	return w.bytes(), nil
}

func (m *Keyspace) Unmarshal(b []byte) error {
	r := newWireReader(b)
	name, err := r.stringField()
	if err != nil {
		return err
	}
	m.Name = name
	return nil
}

// Record is a single key/value pair.
type Record struct {
	Key   []byte
	Value []byte
}

func (m *Record) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putBytes(m.Key)
	w.putBytes(m.Value)
	return w.bytes(), nil
}

func (m *Record) Unmarshal(b []byte) error {
	r := newWireReader(b)
	key, err := r.bytesField()
	if err != nil {
		return err
	}
	value, err := r.bytesField()
	if err != nil {
		return err
	}
	m.Key, m.Value = key, value
	return nil
}

// Empty is the empty request/response used by Ping, CreateKeyspace,
// DeleteKeyspace, TruncateKeyspace, InsertKey, DeleteKey, InsertKeys,
// and DeleteKeys.
type Empty struct{}

func (m *Empty) Marshal() ([]byte, error) { return nil, nil }
func (m *Empty) Unmarshal(_ []byte) error { return nil }

// ListKeyspacesResponse is `{ keyspaces: list<Keyspace> }`, sorted.
type ListKeyspacesResponse struct {
	Keyspaces []*Keyspace
}

func (m *ListKeyspacesResponse) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putUint64(uint64(len(m.Keyspaces)))
	for _, ks := range m.Keyspaces {
		w.putString(ks.Name)
	}
	return w.bytes(), nil
}

func (m *ListKeyspacesResponse) Unmarshal(b []byte) error {
	r := newWireReader(b)
	n, err := r.uint64()
	if err != nil {
		return err
	}
	out := make([]*Keyspace, 0, n)
	for i := uint64(0); i < n; i++ {
		name, err := r.stringField()
		if err != nil {
			return err
		}
		out = append(out, &Keyspace{Name: name})
	}
	m.Keyspaces = out
	return nil
}

// KeyspaceNameRequest is `{ keyspace: string }`, used by GetKeyspace,
// DeleteKeyspace, and TruncateKeyspace.
type KeyspaceNameRequest struct {
	Keyspace string
}

func (m *KeyspaceNameRequest) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.Keyspace)
	return w.bytes(), nil
}

func (m *KeyspaceNameRequest) Unmarshal(b []byte) error {
	r := newWireReader(b)
	ks, err := r.stringField()
	if err != nil {
		return err
	}
	m.Keyspace = ks
	return nil
}

// GetKeyRequest is `{ keyspace, key }`.
type GetKeyRequest struct {
	Keyspace string
	Key      []byte
}

func (m *GetKeyRequest) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.Keyspace)
	w.putBytes(m.Key)
	return w.bytes(), nil
}

func (m *GetKeyRequest) Unmarshal(b []byte) error {
	r := newWireReader(b)
	ks, err := r.stringField()
	if err != nil {
		return err
	}
	key, err := r.bytesField()
	if err != nil {
		return err
	}
	m.Keyspace, m.Key = ks, key
	return nil
}

// InsertKeyRequest is `{ keyspace, record }`. Record is nil when the
// client omits it, which the RPC surface rejects as InvalidArgument.
type InsertKeyRequest struct {
	Keyspace string
	Record   *Record
}

func (m *InsertKeyRequest) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.Keyspace)
	w.putBool(m.Record != nil)
	if m.Record != nil {
		w.putBytes(m.Record.Key)
		w.putBytes(m.Record.Value)
	}
	return w.bytes(), nil
}

func (m *InsertKeyRequest) Unmarshal(b []byte) error {
	r := newWireReader(b)
	ks, err := r.stringField()
	if err != nil {
		return err
	}
	has, err := r.boolField()
	if err != nil {
		return err
	}
	m.Keyspace = ks
	m.Record = nil
	if has {
		key, err := r.bytesField()
		if err != nil {
			return err
		}
		value, err := r.bytesField()
		if err != nil {
			return err
		}
		m.Record = &Record{Key: key, Value: value}
	}
	return nil
}

// DeleteKeyRequest is `{ keyspace, key }`.
type DeleteKeyRequest struct {
	Keyspace string
	Key      []byte
}

func (m *DeleteKeyRequest) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.Keyspace)
	w.putBytes(m.Key)
	return w.bytes(), nil
}

func (m *DeleteKeyRequest) Unmarshal(b []byte) error {
	r := newWireReader(b)
	ks, err := r.stringField()
	if err != nil {
		return err
	}
	key, err := r.bytesField()
	if err != nil {
		return err
	}
	m.Keyspace, m.Key = ks, key
	return nil
}

// InsertKeysRequest is `{ keyspace, records }` — batch upsert.
type InsertKeysRequest struct {
	Keyspace string
	Records  []*Record
}

func (m *InsertKeysRequest) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.Keyspace)
	w.putUint64(uint64(len(m.Records)))
	for _, rec := range m.Records {
		w.putBytes(rec.Key)
		w.putBytes(rec.Value)
	}
	return w.bytes(), nil
}

func (m *InsertKeysRequest) Unmarshal(b []byte) error {
	r := newWireReader(b)
	ks, err := r.stringField()
	if err != nil {
		return err
	}
	n, err := r.uint64()
	if err != nil {
		return err
	}
	recs := make([]*Record, 0, n)
	for i := uint64(0); i < n; i++ {
		key, err := r.bytesField()
		if err != nil {
			return err
		}
		value, err := r.bytesField()
		if err != nil {
			return err
		}
		recs = append(recs, &Record{Key: key, Value: value})
	}
	m.Keyspace, m.Records = ks, recs
	return nil
}

// DeleteKeysRequest is `{ keyspace, keys }` — batch remove.
type DeleteKeysRequest struct {
	Keyspace string
	Keys     [][]byte
}

func (m *DeleteKeysRequest) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.Keyspace)
	w.putBytesSlice(m.Keys)
	return w.bytes(), nil
}

func (m *DeleteKeysRequest) Unmarshal(b []byte) error {
	r := newWireReader(b)
	ks, err := r.stringField()
	if err != nil {
		return err
	}
	keys, err := r.bytesSlice()
	if err != nil {
		return err
	}
	m.Keyspace, m.Keys = ks, keys
	return nil
}

// GetKeysRequest is `{ keyspace, keys }`, the input to the streaming
// multi-get.
type GetKeysRequest struct {
	Keyspace string
	Keys     [][]byte
}

func (m *GetKeysRequest) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.Keyspace)
	w.putBytesSlice(m.Keys)
	return w.bytes(), nil
}

func (m *GetKeysRequest) Unmarshal(b []byte) error {
	r := newWireReader(b)
	ks, err := r.stringField()
	if err != nil {
		return err
	}
	keys, err := r.bytesSlice()
	if err != nil {
		return err
	}
	m.Keyspace, m.Keys = ks, keys
	return nil
}

// NodesResponse backs the Store.Nodes stub: a placeholder for a
// future cluster membership surface. It reports only the local node's
// own address; there is no peer discovery yet.
type NodesResponse struct {
	SelfAddr string
}

func (m *NodesResponse) Marshal() ([]byte, error) {
	w := &wireWriter{}
	w.putString(m.SelfAddr)
	return w.bytes(), nil
}

func (m *NodesResponse) Unmarshal(b []byte) error {
	r := newWireReader(b)
	addr, err := r.stringField()
	if err != nil {
		return err
	}
	m.SelfAddr = addr
	return nil
}
