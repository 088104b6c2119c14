package node

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
	"github.com/aabbfive/ChordDHT/internal/chord"
	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

// refToProto converts a chord.PeerRef to its wire form. The zero ref maps to nil.
func refToProto(r chord.PeerRef) *chordpb.PeerRef {
	if r.IsZero() {
		return nil
	}
	return &chordpb.PeerRef{Name: r.Name, Addr: r.Addr, Key: uint64(r.Key)}
}

// protoToRef converts a wire ref to a chord.PeerRef. nil maps to the zero ref.
func protoToRef(pb *chordpb.PeerRef) chord.PeerRef {
	if pb == nil {
		return chord.PeerRef{}
	}
	return chord.PeerRef{Name: pb.Name, Addr: pb.Addr, Key: keyspace.Key(pb.Key)}
}

// toStatus maps a domain error to a gRPC status error for the wire.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var code codes.Code
	switch {
	case errors.Is(err, chord.ErrInconsistentRing):
		code = codes.Aborted
	case errors.Is(err, chord.ErrKeyCollision):
		code = codes.AlreadyExists
	case errors.Is(err, chord.ErrAlreadyJoined):
		code = codes.FailedPrecondition
	case errors.Is(err, chord.ErrTransport):
		code = codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		if st, ok := status.FromError(err); ok {
			return st.Err()
		}
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

// fromStatus maps an error returned by a stub call on ref back into the
// domain. Anything that is not a ring error counts as a transport failure.
func fromStatus(ref chord.PeerRef, op string, err error) error {
	if err == nil {
		return nil
	}

	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Aborted:
		return fmt.Errorf("%w: %s: %s", chord.ErrInconsistentRing, ref, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s: %s", chord.ErrKeyCollision, ref, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s: %s", chord.ErrAlreadyJoined, ref, st.Message())
	}
	return &chord.TransportError{Peer: ref.String(), Op: op, Err: err}
}
