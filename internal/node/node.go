package node

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
	"github.com/aabbfive/ChordDHT/internal/chord"
	"github.com/aabbfive/ChordDHT/internal/config"
	"github.com/aabbfive/ChordDHT/internal/dht"
	"github.com/aabbfive/ChordDHT/internal/discovery"
	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

// Option customizes a node.
type Option func(*options)

type options struct {
	logger     *logrus.Logger
	dialOpts   []grpc.DialOption
	serverOpts []grpc.ServerOption
	space      *keyspace.Space
}

// WithLogger sets the logger instead of one built from the config.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDialOptions adds options to every peer connection.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOpts = append(o.dialOpts, opts...) }
}

// WithServerOptions adds options to the gRPC server.
func WithServerOptions(opts ...grpc.ServerOption) Option {
	return func(o *options) { o.serverOpts = append(o.serverOpts, opts...) }
}

// WithKeySpace overrides the key space derived from the configured width.
func WithKeySpace(s keyspace.Space) Option {
	return func(o *options) { o.space = &s }
}

// Node represents a single node in the distributed system.
type Node struct {
	cfg        *config.Config
	log        *logrus.Logger
	directory  discovery.Directory
	clientMgr  *ClientManager
	peer       *chord.Peer
	dht        *dht.DHT
	grpcServer *grpc.Server
	health     *health.Server

	stopOnce sync.Once
}

// NewNode creates a new node instance. The node is standalone until Join.
func NewNode(cfg *config.Config, directory discovery.Directory, opts ...Option) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = NewLogger(cfg)
	}

	space := keyspace.MustNew(cfg.Bits)
	if o.space != nil {
		space = *o.space
	}

	clientMgr := NewClientManager(cfg.CallTimeout, o.dialOpts...)
	peer := chord.NewPeer(chord.Config{
		Name:      cfg.Name,
		Addr:      cfg.Advertise(),
		Space:     space,
		Transport: clientMgr,
		MaxHops:   cfg.MaxHops,
		Logger:    logger,
	})
	clientMgr.SetLookupHops(peer.MaxHops())

	n := &Node{
		cfg:        cfg,
		log:        logger,
		directory:  directory,
		clientMgr:  clientMgr,
		peer:       peer,
		dht:        dht.New(peer, logger),
		grpcServer: grpc.NewServer(o.serverOpts...),
		health:     health.NewServer(),
	}

	chordpb.RegisterPeerServer(n.grpcServer, NewPeerServer(peer, logger))
	chordpb.RegisterDHTServer(n.grpcServer, NewDHTServer(n.dht, logger))
	healthpb.RegisterHealthServer(n.grpcServer, n.health)
	reflection.Register(n.grpcServer)

	return n, nil
}

// NewLogger builds the node logger from the configured level.
func NewLogger(cfg *config.Config) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := cfg.Level(); err == nil {
		l.SetLevel(level)
	}
	return l
}

// Peer returns the local ring peer.
func (n *Node) Peer() *chord.Peer {
	return n.peer
}

// DHT returns the local facade.
func (n *Node) DHT() *dht.DHT {
	return n.dht
}

// Start listens on the configured address and serves until Stop.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.cfg.ListenAddr, err)
	}
	return n.Serve(lis)
}

// Serve registers the node in the directory and serves on lis until Stop.
func (n *Node) Serve(lis net.Listener) error {
	n.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	n.health.SetServingStatus(chordpb.Peer_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	n.health.SetServingStatus(chordpb.DHT_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	self := n.peer.Self()
	if err := n.directory.Register(context.Background(), self.Name, self.Addr); err != nil {
		lis.Close()
		return fmt.Errorf("failed to register %s: %w", self.Name, err)
	}

	n.log.WithFields(logrus.Fields{
		"peer": self.Name,
		"addr": lis.Addr().String(),
		"key":  self.Key,
	}).Info("Starting node")

	if err := n.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Join resolves name through the directory and joins the ring it belongs to.
func (n *Node) Join(ctx context.Context, name string) error {
	addr, err := n.directory.Resolve(ctx, name)
	if err != nil {
		return fmt.Errorf("join %s: %w", name, err)
	}
	entry := chord.PeerRef{Name: name, Addr: addr, Key: n.peer.Space().Hash(name)}
	return n.peer.Join(ctx, entry)
}

// Leave splices the node out of its ring.
func (n *Node) Leave(ctx context.Context) error {
	return n.peer.Leave(ctx)
}

// Stop gracefully stops the node. It does not leave the ring.
func (n *Node) Stop() {
	n.stopOnce.Do(func() {
		n.log.WithField("peer", n.cfg.Name).Info("Stopping node")
		n.health.Shutdown()
		n.grpcServer.GracefulStop()
		if err := n.clientMgr.Close(); err != nil {
			n.log.WithError(err).Warn("Closing peer connections failed")
		}
	})
}
