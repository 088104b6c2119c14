// Package chordtest provides an in-memory Transport for exercising the ring
// protocol without a network, with hooks for injecting call failures.
package chordtest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/aabbfive/ChordDHT/internal/chord"
	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

// ErrInjected is the cause of failures produced by FailNext.
var ErrInjected = errors.New("injected failure")

type fault struct {
	addr      string
	op        string
	skip      int
	remaining int
}

type hook struct {
	addr string
	op   string
	fn   func()
}

// Network routes calls between peers registered by address.
type Network struct {
	mu     sync.Mutex
	peers  map[string]*chord.Peer
	down   map[string]bool
	faults []*fault
	hooks  []*hook
	calls  map[string]int
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		peers: make(map[string]*chord.Peer),
		down:  make(map[string]bool),
		calls: make(map[string]int),
	}
}

// QuietLogger returns a logger that discards output.
func QuietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewPeer creates a standalone peer attached to the network. Its address is
// derived from its name.
func (n *Network) NewPeer(name string, space keyspace.Space, opts ...func(*chord.Config)) *chord.Peer {
	cfg := chord.Config{
		Name:      name,
		Addr:      name + ".mem",
		Space:     space,
		Transport: n,
		Logger:    QuietLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := chord.NewPeer(cfg)
	n.Add(p)
	return p
}

// BuildRing creates one peer per name and joins each through the first.
func (n *Network) BuildRing(ctx context.Context, space keyspace.Space, names ...string) ([]*chord.Peer, error) {
	peers := make([]*chord.Peer, 0, len(names))
	for i, name := range names {
		p := n.NewPeer(name, space)
		if i > 0 {
			if err := p.Join(ctx, peers[0].Self()); err != nil {
				return nil, fmt.Errorf("join %s: %w", name, err)
			}
		}
		peers = append(peers, p)
	}
	return peers, nil
}

// Add registers a peer under its address.
func (n *Network) Add(p *chord.Peer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.peers[p.Self().Addr] = p
}

// SetDown makes every call to addr fail (or succeed again).
func (n *Network) SetDown(addr string, down bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.down[addr] = down
}

// FailNext makes the next times calls of op on addr fail with ErrInjected.
// Op names match the Remote method names, e.g. "SetPredecessor".
func (n *Network) FailNext(addr, op string, times int) {
	n.FailAfter(addr, op, 0, times)
}

// FailAfter lets skip calls of op on addr through, then fails the next times.
func (n *Network) FailAfter(addr, op string, skip, times int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.faults = append(n.faults, &fault{addr: addr, op: op, skip: skip, remaining: times})
}

// OnCall runs fn once, before the next call of op on addr is served. The
// call waits for fn to return, which lets a test interleave work with a
// protocol operation at a chosen point.
func (n *Network) OnCall(addr, op string, fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hooks = append(n.hooks, &hook{addr: addr, op: op, fn: fn})
}

// Calls returns how many calls of op reached addr, failed ones included.
func (n *Network) Calls(addr, op string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[addr+"/"+op]
}

// Peer implements chord.Transport. Resolution is deferred to call time.
func (n *Network) Peer(ref chord.PeerRef) (chord.Remote, error) {
	return &remote{net: n, ref: ref}, nil
}

func (n *Network) target(ref chord.PeerRef, op string) (*chord.Peer, error) {
	if fn := n.takeHook(ref.Addr, op); fn != nil {
		fn()
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls[ref.Addr+"/"+op]++

	if n.down[ref.Addr] {
		return nil, &chord.TransportError{Peer: ref.String(), Op: op, Err: errors.New("peer unreachable")}
	}
	for _, f := range n.faults {
		if f.addr != ref.Addr || f.op != op || f.remaining == 0 {
			continue
		}
		if f.skip > 0 {
			f.skip--
			continue
		}
		f.remaining--
		return nil, &chord.TransportError{Peer: ref.String(), Op: op, Err: ErrInjected}
	}
	p, ok := n.peers[ref.Addr]
	if !ok {
		return nil, &chord.TransportError{Peer: ref.String(), Op: op, Err: errors.New("no such peer")}
	}
	return p, nil
}

func (n *Network) takeHook(addr, op string) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, h := range n.hooks {
		if h.addr == addr && h.op == op {
			n.hooks = append(n.hooks[:i], n.hooks[i+1:]...)
			return h.fn
		}
	}
	return nil
}

type remote struct {
	net *Network
	ref chord.PeerRef
}

func (r *remote) Ref() chord.PeerRef { return r.ref }

func (r *remote) Key(ctx context.Context) (keyspace.Key, error) {
	p, err := r.net.target(r.ref, "Key")
	if err != nil {
		return 0, err
	}
	return p.Key(ctx)
}

func (r *remote) Successor(ctx context.Context) (chord.PeerRef, error) {
	p, err := r.net.target(r.ref, "Successor")
	if err != nil {
		return chord.PeerRef{}, err
	}
	return p.Successor(ctx)
}

func (r *remote) Predecessor(ctx context.Context) (chord.PeerRef, error) {
	p, err := r.net.target(r.ref, "Predecessor")
	if err != nil {
		return chord.PeerRef{}, err
	}
	return p.Predecessor(ctx)
}

func (r *remote) SetSuccessor(ctx context.Context, u chord.LinkUpdate) error {
	p, err := r.net.target(r.ref, "SetSuccessor")
	if err != nil {
		return err
	}
	return p.SetSuccessor(ctx, u)
}

func (r *remote) SetPredecessor(ctx context.Context, u chord.LinkUpdate) error {
	p, err := r.net.target(r.ref, "SetPredecessor")
	if err != nil {
		return err
	}
	return p.SetPredecessor(ctx, u)
}

func (r *remote) Probe(ctx context.Context, origin keyspace.Key, hops int) (chord.ProbeStep, error) {
	p, err := r.net.target(r.ref, "Probe")
	if err != nil {
		return chord.ProbeStep{}, err
	}
	return p.Probe(ctx, origin, hops)
}

func (r *remote) Route(ctx context.Context, key keyspace.Key) (chord.RouteStep, error) {
	p, err := r.net.target(r.ref, "Route")
	if err != nil {
		return chord.RouteStep{}, err
	}
	return p.Route(ctx, key)
}

func (r *remote) Lookup(ctx context.Context, key keyspace.Key) (chord.PeerRef, error) {
	p, err := r.net.target(r.ref, "Lookup")
	if err != nil {
		return chord.PeerRef{}, err
	}
	return p.Lookup(ctx, key)
}

func (r *remote) GetStored(ctx context.Context, key keyspace.Key) ([]byte, bool, error) {
	p, err := r.net.target(r.ref, "GetStored")
	if err != nil {
		return nil, false, err
	}
	return p.GetStored(ctx, key)
}

func (r *remote) AddStored(ctx context.Context, key keyspace.Key, value []byte) error {
	p, err := r.net.target(r.ref, "AddStored")
	if err != nil {
		return err
	}
	return p.AddStored(ctx, key, value)
}

func (r *remote) RemoveStored(ctx context.Context, key keyspace.Key) error {
	p, err := r.net.target(r.ref, "RemoveStored")
	if err != nil {
		return err
	}
	return p.RemoveStored(ctx, key)
}

func (r *remote) Values(ctx context.Context) ([][]byte, error) {
	p, err := r.net.target(r.ref, "Values")
	if err != nil {
		return nil, err
	}
	return p.Values(ctx)
}
