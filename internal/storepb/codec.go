package storepb

import "fmt"

// wireMessage is satisfied by every message type in this package.
type wireMessage interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// Codec is a gRPC encoding.Codec for the hand-rolled messages in this
// package. It is registered on both the server (grpc.ForceServerCodec)
// and the client (grpc.ForceCodec, via a default call option) in
// place of gRPC's usual protobuf codec, since these messages are not
// protoc-generated. See wire.go for the rationale.
type Codec struct{}

func (Codec) Name() string { return "storewire" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(wireMessage)
	if !ok {
		return nil, fmt.Errorf("storepb: cannot marshal %T: does not implement wireMessage", v)
	}
	return m.Marshal()
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(wireMessage)
	if !ok {
		return fmt.Errorf("storepb: cannot unmarshal into %T: does not implement wireMessage", v)
	}
	return m.Unmarshal(data)
}
