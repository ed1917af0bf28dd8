// Package storeerr defines the closed error taxonomy shared by the
// keyspace catalog, the per-key operations, and the RPC surface, plus
// the projection of that taxonomy onto gRPC status codes.
package storeerr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind is the closed set of error categories the core can produce.
// Nothing outside this set should ever reach the RPC boundary.
type Kind int

const (
	// KindInternal subsumes engine and filesystem I/O failures.
	KindInternal Kind = iota
	KindKeyspaceNotFound
	KindKeyspaceAlreadyExists
	KindKeyNotFound
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindKeyspaceNotFound:
		return "KeyspaceNotFound"
	case KindKeyspaceAlreadyExists:
		return "KeyspaceAlreadyExists"
	case KindKeyNotFound:
		return "KeyNotFound"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return "Internal"
	}
}

// Error is the tagged-union error type used throughout the core. Its
// Error() string includes the wrapped cause for logging, but ToStatus
// sends only the msg field, so a client never sees the cause's engine
// or filesystem details.
type Error struct {
	Kind Kind
	msg  string
	// cause is kept for %w-unwrapping and logging, never surfaced to
	// a client in full.
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Is allows errors.Is(err, storeerr.KeyspaceNotFound) style checks by
// comparing Kind rather than requiring identical messages.
func (e *Error) Is(target error) bool {
	var te *Error
	if errors.As(target, &te) {
		return e.Kind == te.Kind
	}
	return false
}

func newErr(k Kind, msg string) *Error { return &Error{Kind: k, msg: msg} }

// Sentinel values for errors.Is comparisons against a bare Kind.
var (
	KeyspaceNotFound      = newErr(KindKeyspaceNotFound, "keyspace not found")
	KeyspaceAlreadyExists = newErr(KindKeyspaceAlreadyExists, "keyspace already exists")
	KeyNotFound           = newErr(KindKeyNotFound, "key not found")
	InvalidArgument       = newErr(KindInvalidArgument, "invalid argument")
	Internal              = newErr(KindInternal, "internal error")
)

// Newf builds an Error of the given kind with a formatted message.
func Newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error (typically from the engine or the
// filesystem) as Internal, keeping the original for logging via
// Unwrap but never exposing it verbatim at the RPC boundary.
func Wrap(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, msg: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// errors that were never tagged (a programmer error, since every path
// reaching the RPC boundary must return a tagged *Error, but we fail
// closed rather than panic).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ToStatus projects the closed taxonomy onto gRPC status codes. No
// internal error, stack trace, or raw engine message is included
// beyond the short human-readable string already present on the
// Error.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}
	switch e.Kind {
	case KindKeyspaceNotFound, KindKeyNotFound:
		return status.Error(codes.NotFound, e.msg)
	case KindKeyspaceAlreadyExists:
		return status.Error(codes.AlreadyExists, e.msg)
	case KindInvalidArgument:
		return status.Error(codes.InvalidArgument, e.msg)
	default:
		return status.Error(codes.Internal, e.msg)
	}
}

// FromStatus is the inverse mapping: it turns a received gRPC status
// back into the closed taxonomy so client-side code (the RPC tests in
// this module) can use KindOf or errors.Is against the same sentinels
// the server uses. NotFound always comes back as KeyNotFound, since
// the wire code does not say whether a key or a keyspace was missing.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return Wrap(err, "rpc failed")
	}
	switch st.Code() {
	case codes.NotFound:
		return Newf(KindKeyNotFound, "%s", st.Message())
	case codes.AlreadyExists:
		return Newf(KindKeyspaceAlreadyExists, "%s", st.Message())
	case codes.InvalidArgument:
		return Newf(KindInvalidArgument, "%s", st.Message())
	default:
		return Newf(KindInternal, "%s", st.Message())
	}
}
