package node

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
	"github.com/aabbfive/ChordDHT/internal/chord"
	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

// PeerServer implements the chord.Peer gRPC service on top of a local peer.
type PeerServer struct {
	chordpb.UnimplementedPeerServer
	peer *chord.Peer
	log  logrus.FieldLogger
}

// NewPeerServer creates a new peer server instance.
func NewPeerServer(peer *chord.Peer, logger logrus.FieldLogger) *PeerServer {
	return &PeerServer{
		peer: peer,
		log:  logger.WithField("peer", peer.Self().Name),
	}
}

// GetKey returns the peer's ring key.
func (s *PeerServer) GetKey(ctx context.Context, _ *chordpb.Empty) (*chordpb.KeyResponse, error) {
	return &chordpb.KeyResponse{Key: uint64(s.peer.Self().Key)}, nil
}

// GetSuccessor returns the successor link.
func (s *PeerServer) GetSuccessor(ctx context.Context, _ *chordpb.Empty) (*chordpb.PeerRef, error) {
	succ, _ := s.peer.Links()
	return refToProto(succ), nil
}

// GetPredecessor returns the predecessor link.
func (s *PeerServer) GetPredecessor(ctx context.Context, _ *chordpb.Empty) (*chordpb.PeerRef, error) {
	_, pred := s.peer.Links()
	return refToProto(pred), nil
}

// SetSuccessor applies a successor link update from another peer.
func (s *PeerServer) SetSuccessor(ctx context.Context, req *chordpb.SetLinkRequest) (*chordpb.SetLinkResponse, error) {
	return s.setLink(ctx, req, s.peer.SetSuccessor)
}

// SetPredecessor applies a predecessor link update from another peer.
func (s *PeerServer) SetPredecessor(ctx context.Context, req *chordpb.SetLinkRequest) (*chordpb.SetLinkResponse, error) {
	return s.setLink(ctx, req, s.peer.SetPredecessor)
}

// setLink reports a rejected conditional update in the response rather than
// as an error, together with the link the update ran into.
func (s *PeerServer) setLink(ctx context.Context, req *chordpb.SetLinkRequest, set func(context.Context, chord.LinkUpdate) error) (*chordpb.SetLinkResponse, error) {
	if req.GetPeer() == nil {
		return nil, status.Error(codes.InvalidArgument, "peer cannot be empty")
	}

	u := chord.Set(protoToRef(req.Peer))
	if req.Expected != nil {
		u = chord.Swap(protoToRef(req.Expected), u.Peer)
	}

	err := set(ctx, u)
	var conflict *chord.LinkConflictError
	if errors.As(err, &conflict) {
		return &chordpb.SetLinkResponse{Current: refToProto(conflict.Current)}, nil
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &chordpb.SetLinkResponse{Swapped: true, Current: refToProto(u.Peer)}, nil
}

// Probe handles one hop of a ring probe.
func (s *PeerServer) Probe(ctx context.Context, req *chordpb.ProbeRequest) (*chordpb.ProbeResponse, error) {
	step, err := s.peer.Probe(ctx, keyspace.Key(req.OriginKey), int(req.Hops))
	if err != nil {
		return nil, toStatus(err)
	}
	return &chordpb.ProbeResponse{Done: step.Done, Hops: uint32(step.Hops), Next: refToProto(step.Next)}, nil
}

// Route handles one hop of a lookup.
func (s *PeerServer) Route(ctx context.Context, req *chordpb.KeyRequest) (*chordpb.RouteResponse, error) {
	step, err := s.peer.Route(ctx, keyspace.Key(req.Key))
	if err != nil {
		return nil, toStatus(err)
	}
	return &chordpb.RouteResponse{Owner: step.Owner, Next: refToProto(step.Next)}, nil
}

// Lookup runs a full lookup starting at this peer.
func (s *PeerServer) Lookup(ctx context.Context, req *chordpb.KeyRequest) (*chordpb.PeerRef, error) {
	owner, err := s.peer.Lookup(ctx, keyspace.Key(req.Key))
	if err != nil {
		s.log.WithError(err).WithField("key", req.Key).Warn("Lookup failed")
		return nil, toStatus(err)
	}
	return refToProto(owner), nil
}

// GetStored reads a value from the local store.
func (s *PeerServer) GetStored(ctx context.Context, req *chordpb.KeyRequest) (*chordpb.ValueResponse, error) {
	value, found, err := s.peer.GetStored(ctx, keyspace.Key(req.Key))
	if err != nil {
		return nil, toStatus(err)
	}
	return &chordpb.ValueResponse{Found: found, Value: value}, nil
}

// AddStored writes a value to the local store.
func (s *PeerServer) AddStored(ctx context.Context, req *chordpb.StoreRequest) (*chordpb.Empty, error) {
	if err := s.peer.AddStored(ctx, keyspace.Key(req.Key), req.Value); err != nil {
		return nil, toStatus(err)
	}
	return &chordpb.Empty{}, nil
}

// RemoveStored deletes a value from the local store.
func (s *PeerServer) RemoveStored(ctx context.Context, req *chordpb.KeyRequest) (*chordpb.Empty, error) {
	if err := s.peer.RemoveStored(ctx, keyspace.Key(req.Key)); err != nil {
		return nil, toStatus(err)
	}
	return &chordpb.Empty{}, nil
}

// GetValues returns every locally stored value.
func (s *PeerServer) GetValues(ctx context.Context, _ *chordpb.Empty) (*chordpb.ValuesResponse, error) {
	values, err := s.peer.Values(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chordpb.ValuesResponse{Values: values}, nil
}
