package node

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
	"github.com/aabbfive/ChordDHT/internal/dht"
)

// DHTServer implements the chord.DHT gRPC service.
type DHTServer struct {
	chordpb.UnimplementedDHTServer
	dht *dht.DHT
	log logrus.FieldLogger
}

// NewDHTServer creates a new client-facing server instance.
func NewDHTServer(d *dht.DHT, logger logrus.FieldLogger) *DHTServer {
	return &DHTServer{
		dht: d,
		log: logger.WithField("peer", d.Peer().Self().Name),
	}
}

// Put handles Put requests.
func (s *DHTServer) Put(ctx context.Context, req *chordpb.PutRequest) (*chordpb.Empty, error) {
	s.log.WithField("key", req.Key).Debug("Put request")

	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key cannot be empty")
	}
	if err := s.dht.Put(ctx, req.Key, req.Value); err != nil {
		s.log.WithError(err).WithField("key", req.Key).Warn("Put failed")
		return nil, toStatus(err)
	}
	return &chordpb.Empty{}, nil
}

// Get handles Get requests.
func (s *DHTServer) Get(ctx context.Context, req *chordpb.GetRequest) (*chordpb.GetResponse, error) {
	s.log.WithField("key", req.Key).Debug("Get request")

	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key cannot be empty")
	}
	value, found, err := s.dht.Get(ctx, req.Key)
	if err != nil {
		s.log.WithError(err).WithField("key", req.Key).Warn("Get failed")
		return nil, toStatus(err)
	}
	return &chordpb.GetResponse{Found: found, Value: value}, nil
}

// Remove handles Remove requests.
func (s *DHTServer) Remove(ctx context.Context, req *chordpb.RemoveRequest) (*chordpb.Empty, error) {
	s.log.WithField("key", req.Key).Debug("Remove request")

	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key cannot be empty")
	}
	if err := s.dht.Remove(ctx, req.Key); err != nil {
		s.log.WithError(err).WithField("key", req.Key).Warn("Remove failed")
		return nil, toStatus(err)
	}
	return &chordpb.Empty{}, nil
}

// ListAll returns every value stored in the ring.
func (s *DHTServer) ListAll(ctx context.Context, _ *chordpb.Empty) (*chordpb.ListAllResponse, error) {
	values, err := s.dht.ListAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("ListAll failed")
		return nil, toStatus(err)
	}
	return &chordpb.ListAllResponse{Values: values}, nil
}

// Probe returns the ring size.
func (s *DHTServer) Probe(ctx context.Context, _ *chordpb.Empty) (*chordpb.ProbeResponse, error) {
	size, err := s.dht.RingSize(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chordpb.ProbeResponse{Done: true, Hops: uint32(size)}, nil
}

// Ring reports the members of the ring and the owner of a key.
func (s *DHTServer) Ring(ctx context.Context, req *chordpb.RingRequest) (*chordpb.RingResponse, error) {
	info, err := s.dht.Ring(ctx, req.Key)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &chordpb.RingResponse{
		Members: make([]*chordpb.PeerRef, 0, len(info.Members)),
		Key:     uint64(info.Key),
		Owner:   refToProto(info.Owner),
	}
	for _, m := range info.Members {
		resp.Members = append(resp.Members, refToProto(m))
	}
	return resp, nil
}
