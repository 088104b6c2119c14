package node

import (
	"context"
	"time"

	"google.golang.org/grpc"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
	"github.com/aabbfive/ChordDHT/internal/chord"
	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

// remotePeer is a chord.Remote backed by a chord.Peer gRPC client.
type remotePeer struct {
	ref           chord.PeerRef
	client        chordpb.PeerClient
	timeout       time.Duration
	lookupTimeout time.Duration
}

func (r *remotePeer) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *remotePeer) Ref() chord.PeerRef { return r.ref }

func (r *remotePeer) Key(ctx context.Context) (keyspace.Key, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.GetKey(ctx, &chordpb.Empty{})
	if err != nil {
		return 0, fromStatus(r.ref, "GetKey", err)
	}
	return keyspace.Key(resp.Key), nil
}

func (r *remotePeer) Successor(ctx context.Context) (chord.PeerRef, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.GetSuccessor(ctx, &chordpb.Empty{})
	if err != nil {
		return chord.PeerRef{}, fromStatus(r.ref, "GetSuccessor", err)
	}
	return protoToRef(resp), nil
}

func (r *remotePeer) Predecessor(ctx context.Context) (chord.PeerRef, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.GetPredecessor(ctx, &chordpb.Empty{})
	if err != nil {
		return chord.PeerRef{}, fromStatus(r.ref, "GetPredecessor", err)
	}
	return protoToRef(resp), nil
}

func (r *remotePeer) SetSuccessor(ctx context.Context, u chord.LinkUpdate) error {
	return r.setLink(ctx, "successor", "SetSuccessor", u, r.client.SetSuccessor)
}

func (r *remotePeer) SetPredecessor(ctx context.Context, u chord.LinkUpdate) error {
	return r.setLink(ctx, "predecessor", "SetPredecessor", u, r.client.SetPredecessor)
}

type setLinkFunc func(context.Context, *chordpb.SetLinkRequest, ...grpc.CallOption) (*chordpb.SetLinkResponse, error)

func (r *remotePeer) setLink(ctx context.Context, link, op string, u chord.LinkUpdate, set setLinkFunc) error {
	ctx, cancel := r.call(ctx)
	defer cancel()

	req := &chordpb.SetLinkRequest{Peer: refToProto(u.Peer)}
	if u.Expect != nil {
		req.Expected = refToProto(*u.Expect)
		if req.Expected == nil {
			req.Expected = &chordpb.PeerRef{}
		}
	}

	resp, err := set(ctx, req)
	if err != nil {
		return fromStatus(r.ref, op, err)
	}
	if !resp.Swapped {
		return &chord.LinkConflictError{Link: link, Current: protoToRef(resp.GetCurrent())}
	}
	return nil
}

func (r *remotePeer) Probe(ctx context.Context, origin keyspace.Key, hops int) (chord.ProbeStep, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.Probe(ctx, &chordpb.ProbeRequest{OriginKey: uint64(origin), Hops: uint32(hops)})
	if err != nil {
		return chord.ProbeStep{}, fromStatus(r.ref, "Probe", err)
	}
	return chord.ProbeStep{Done: resp.Done, Hops: int(resp.Hops), Next: protoToRef(resp.GetNext())}, nil
}

func (r *remotePeer) Route(ctx context.Context, key keyspace.Key) (chord.RouteStep, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.Route(ctx, &chordpb.KeyRequest{Key: uint64(key)})
	if err != nil {
		return chord.RouteStep{}, fromStatus(r.ref, "Route", err)
	}
	return chord.RouteStep{Owner: resp.Owner, Next: protoToRef(resp.GetNext())}, nil
}

// Lookup runs the whole lookup on the remote peer, so it gets one call
// timeout per hop instead of a single one.
func (r *remotePeer) Lookup(ctx context.Context, key keyspace.Key) (chord.PeerRef, error) {
	ctx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
	defer cancel()

	resp, err := r.client.Lookup(ctx, &chordpb.KeyRequest{Key: uint64(key)})
	if err != nil {
		return chord.PeerRef{}, fromStatus(r.ref, "Lookup", err)
	}
	return protoToRef(resp), nil
}

func (r *remotePeer) GetStored(ctx context.Context, key keyspace.Key) ([]byte, bool, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.GetStored(ctx, &chordpb.KeyRequest{Key: uint64(key)})
	if err != nil {
		return nil, false, fromStatus(r.ref, "GetStored", err)
	}
	if !resp.Found {
		return nil, false, nil
	}
	value := resp.Value
	if value == nil {
		value = []byte{}
	}
	return value, true, nil
}

func (r *remotePeer) AddStored(ctx context.Context, key keyspace.Key, value []byte) error {
	ctx, cancel := r.call(ctx)
	defer cancel()

	_, err := r.client.AddStored(ctx, &chordpb.StoreRequest{Key: uint64(key), Value: value})
	return fromStatus(r.ref, "AddStored", err)
}

func (r *remotePeer) RemoveStored(ctx context.Context, key keyspace.Key) error {
	ctx, cancel := r.call(ctx)
	defer cancel()

	_, err := r.client.RemoveStored(ctx, &chordpb.KeyRequest{Key: uint64(key)})
	return fromStatus(r.ref, "RemoveStored", err)
}

func (r *remotePeer) Values(ctx context.Context) ([][]byte, error) {
	ctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.GetValues(ctx, &chordpb.Empty{})
	if err != nil {
		return nil, fromStatus(r.ref, "GetValues", err)
	}
	return resp.Values, nil
}
