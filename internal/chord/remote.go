package chord

import (
	"context"

	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

// Remote is the capability set a peer exposes to other peers. Every method
// may fail with a transport error.
type Remote interface {
	// Ref returns the handle this Remote was obtained for.
	Ref() PeerRef
	Key(ctx context.Context) (keyspace.Key, error)
	Successor(ctx context.Context) (PeerRef, error)
	Predecessor(ctx context.Context) (PeerRef, error)
	SetSuccessor(ctx context.Context, u LinkUpdate) error
	SetPredecessor(ctx context.Context, u LinkUpdate) error
	// Probe performs one hop of a ring probe.
	Probe(ctx context.Context, origin keyspace.Key, hops int) (ProbeStep, error)
	// Route performs one hop of a lookup.
	Route(ctx context.Context, key keyspace.Key) (RouteStep, error)
	// Lookup finds the owner of key starting from this peer.
	Lookup(ctx context.Context, key keyspace.Key) (PeerRef, error)
	GetStored(ctx context.Context, key keyspace.Key) ([]byte, bool, error)
	AddStored(ctx context.Context, key keyspace.Key, value []byte) error
	RemoveStored(ctx context.Context, key keyspace.Key) error
	Values(ctx context.Context) ([][]byte, error)
}

// Transport resolves peer handles to callable Remotes.
type Transport interface {
	Peer(ref PeerRef) (Remote, error)
}

// LinkUpdate replaces a successor or predecessor link. With a nil Expect the
// update is unconditional. Otherwise it is applied only when the current link
// is the same peer as *Expect; a link that already points at Peer is left as
// is and the update succeeds, so retrying an applied update is safe.
type LinkUpdate struct {
	Peer   PeerRef
	Expect *PeerRef
}

// Set returns an unconditional update to p.
func Set(p PeerRef) LinkUpdate {
	return LinkUpdate{Peer: p}
}

// Swap returns an update from expect to p.
func Swap(expect, p PeerRef) LinkUpdate {
	return LinkUpdate{Peer: p, Expect: &expect}
}

// RouteStep is the answer of a single lookup hop.
type RouteStep struct {
	// Owner is true when the answering peer owns the key.
	Owner bool
	// Next is the peer to ask next when Owner is false.
	Next PeerRef
}

// ProbeStep is the answer of a single probe hop.
type ProbeStep struct {
	// Done is true once the probe is back at its origin.
	Done bool
	// Hops is the hop count so far; the ring size when Done.
	Hops int
	// Next is the peer to forward to when Done is false.
	Next PeerRef
}
