package node

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
	"github.com/aabbfive/ChordDHT/internal/chord"
)

// DefaultCallTimeout bounds every peer call that has no earlier deadline.
const DefaultCallTimeout = 2 * time.Second

var errClosed = errors.New("client manager closed")

// ClientManager manages gRPC connections to peer nodes, one per address. It
// implements chord.Transport.
type ClientManager struct {
	mu          sync.RWMutex
	conns       map[string]*grpc.ClientConn
	closed      bool
	dialOpts    []grpc.DialOption
	callTimeout time.Duration
	lookupHops  int
}

// NewClientManager creates a new client manager. dialOpts are appended to
// the insecure transport credentials.
func NewClientManager(callTimeout time.Duration, dialOpts ...grpc.DialOption) *ClientManager {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	opts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, dialOpts...)
	return &ClientManager{
		conns:       make(map[string]*grpc.ClientConn),
		dialOpts:    opts,
		callTimeout: callTimeout,
		lookupHops:  chord.DefaultMaxHops,
	}
}

// SetLookupHops sets the hop ceiling assumed for lookups delegated to a
// remote peer. Their deadline is one call timeout per hop.
func (cm *ClientManager) SetLookupHops(hops int) {
	if hops <= 0 {
		hops = chord.DefaultMaxHops
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.lookupHops = hops
}

// conn returns the connection for addr, creating it on first use. Creation
// does not block; failures surface on the first call.
func (cm *ClientManager) conn(addr string) (*grpc.ClientConn, error) {
	cm.mu.RLock()
	conn, exists := cm.conns[addr]
	closed := cm.closed
	cm.mu.RUnlock()

	if closed {
		return nil, errClosed
	}
	if exists {
		return conn, nil
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	// Double-check after acquiring write lock
	if cm.closed {
		return nil, errClosed
	}
	if conn, exists := cm.conns[addr]; exists {
		return conn, nil
	}

	conn, err := grpc.NewClient("passthrough:///"+addr, cm.dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}
	cm.conns[addr] = conn
	return conn, nil
}

// Peer implements chord.Transport.
func (cm *ClientManager) Peer(ref chord.PeerRef) (chord.Remote, error) {
	conn, err := cm.conn(ref.Addr)
	if err != nil {
		return nil, &chord.TransportError{Peer: ref.String(), Op: "dial", Err: err}
	}
	cm.mu.RLock()
	hops := cm.lookupHops
	cm.mu.RUnlock()

	return &remotePeer{
		ref:           ref,
		client:        chordpb.NewPeerClient(conn),
		timeout:       cm.callTimeout,
		lookupTimeout: cm.callTimeout * time.Duration(hops+1),
	}, nil
}

// DHTClient returns a client for the DHT service of the node at addr.
func (cm *ClientManager) DHTClient(addr string) (chordpb.DHTClient, error) {
	conn, err := cm.conn(addr)
	if err != nil {
		return nil, err
	}
	return chordpb.NewDHTClient(conn), nil
}

// Close closes all client connections. Later calls fail.
func (cm *ClientManager) Close() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	var errs []error
	for addr, conn := range cm.conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", addr, err))
		}
	}
	cm.conns = make(map[string]*grpc.ClientConn)
	cm.closed = true
	return errors.Join(errs...)
}
