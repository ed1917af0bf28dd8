// Package storepb defines the wire messages for the Store RPC service
// and a minimal binary codec for them.
//
// Each message implements Marshal/Unmarshal directly against a small
// length-prefixed binary encoding (wireWriter/wireReader below), and
// that pair of methods is registered with gRPC as a custom message
// codec (see codec.go) via the same encoding.Codec extension point
// protobuf/gogo-proto codecs use. The result is still gRPC's framed,
// binary, HTTP/2-multiplexed transport — only the per-message
// marshaling is hand-rolled rather than generated from a .proto file.
package storepb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// wireWriter accumulates fields in declaration order. Every message's
// Marshal method writes its fields with this in a fixed order, and
// Unmarshal reads them back in the same order — there is no field
// tagging, so the encoding is only valid between two copies of this
// package, which is the only pairing that matters here (client and
// server are built from the same module).
type wireWriter struct {
	buf bytes.Buffer
}

func (w *wireWriter) bytes() []byte { return w.buf.Bytes() }

func (w *wireWriter) putUint64(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *wireWriter) putBytes(b []byte) {
	w.putUint64(uint64(len(b)))
	w.buf.Write(b)
}

func (w *wireWriter) putString(s string) { w.putBytes([]byte(s)) }

func (w *wireWriter) putBytesSlice(items [][]byte) {
	w.putUint64(uint64(len(items)))
	for _, it := range items {
		w.putBytes(it)
	}
}

func (w *wireWriter) putBool(b bool) {
	if b {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

type wireReader struct {
	r *bytes.Reader
}

func newWireReader(b []byte) *wireReader { return &wireReader{r: bytes.NewReader(b)} }

func (r *wireReader) uint64() (uint64, error) {
	v, err := binary.ReadUvarint(r.r)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, errShortMessage
	}
	return v, err
}

func (r *wireReader) bytesField() ([]byte, error) {
	n, err := r.uint64()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errShortMessage
		}
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errShortMessage
		}
		return nil, err
	}
	return buf, nil
}

func (r *wireReader) stringField() (string, error) {
	b, err := r.bytesField()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *wireReader) bytesSlice() ([][]byte, error) {
	n, err := r.uint64()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, 0, n)
	for i := uint64(0); i < n; i++ {
		b, err := r.bytesField()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *wireReader) boolField() (bool, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, errShortMessage
		}
		return false, err
	}
	return b != 0, nil
}

// errShortMessage is returned when a message's bytes are exhausted
// before all declared fields were read.
var errShortMessage = errors.New("storepb: short message")
