package chord

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/aabbfive/ChordDHT/internal/keyspace"
	"github.com/aabbfive/ChordDHT/internal/storage"
)

const (
	// DefaultMaxHops caps routing walks when the key space is large.
	DefaultMaxHops = 4096
	// DefaultMaxJoinAttempts bounds join retries after link conflicts.
	DefaultMaxJoinAttempts = 16
)

// Config holds the settings of a single peer.
type Config struct {
	Name      string
	Addr      string
	Space     keyspace.Space
	Transport Transport
	// Store defaults to an in-memory store.
	Store storage.Store
	// MaxHops defaults to min(space size, DefaultMaxHops).
	MaxHops         int
	MaxJoinAttempts int
	Logger          logrus.FieldLogger
}

// Peer is a single node's ring state and local storage. It implements Remote
// for calls that land on itself.
type Peer struct {
	self            PeerRef
	space           keyspace.Space
	transport       Transport
	store           storage.Store
	maxHops         int
	maxJoinAttempts int
	log             logrus.FieldLogger

	mu          sync.RWMutex // protects successor, predecessor and splicing
	successor   PeerRef
	predecessor PeerRef
	splicing    bool // a join or leave of this peer is in progress

	opMu sync.Mutex // serializes Join and Leave
}

// NewPeer creates a standalone peer: its own successor and predecessor.
func NewPeer(cfg Config) *Peer {
	self := PeerRef{
		Name: cfg.Name,
		Addr: cfg.Addr,
		Key:  cfg.Space.Hash(cfg.Name),
	}

	store := cfg.Store
	if store == nil {
		store = storage.NewInMemoryStore()
	}

	maxHops := cfg.MaxHops
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
		if size := cfg.Space.Size(); size < uint64(maxHops) {
			maxHops = int(size)
		}
	}
	attempts := cfg.MaxJoinAttempts
	if attempts <= 0 {
		attempts = DefaultMaxJoinAttempts
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Peer{
		self:            self,
		space:           cfg.Space,
		transport:       cfg.Transport,
		store:           store,
		maxHops:         maxHops,
		maxJoinAttempts: attempts,
		log:             logger.WithField("peer", cfg.Name),
		successor:       self,
		predecessor:     self,
	}
}

// Self returns this peer's handle.
func (p *Peer) Self() PeerRef { return p.self }

// Space returns the key space the peer hashes into.
func (p *Peer) Space() keyspace.Space { return p.space }

// MaxHops returns the routing hop ceiling.
func (p *Peer) MaxHops() int { return p.maxHops }

// Store returns the peer's local storage.
func (p *Peer) Store() storage.Store { return p.store }

// Links returns the current successor and predecessor.
func (p *Peer) Links() (succ, pred PeerRef) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.successor, p.predecessor
}

// Standalone reports whether the peer forms a ring of size one.
func (p *Peer) Standalone() bool {
	succ, pred := p.Links()
	return succ.Same(p.self) && pred.Same(p.self)
}

// Remote returns a callable handle for ref, short-circuiting calls to self.
func (p *Peer) Remote(ref PeerRef) (Remote, error) {
	if ref.Same(p.self) {
		return p, nil
	}
	if p.transport == nil {
		return nil, &TransportError{Peer: ref.String(), Op: "dial", Err: errors.New("no transport configured")}
	}
	return p.transport.Peer(ref)
}

// Ref returns this peer's handle.
func (p *Peer) Ref() PeerRef { return p.self }

// Key returns this peer's key.
func (p *Peer) Key(ctx context.Context) (keyspace.Key, error) {
	return p.self.Key, nil
}

// Successor returns the successor link.
func (p *Peer) Successor(ctx context.Context) (PeerRef, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.successor, nil
}

// Predecessor returns the predecessor link.
func (p *Peer) Predecessor(ctx context.Context) (PeerRef, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.predecessor, nil
}

// SetSuccessor updates the successor link.
func (p *Peer) SetSuccessor(ctx context.Context, u LinkUpdate) error {
	return p.setLink("successor", &p.successor, u)
}

// SetPredecessor updates the predecessor link.
func (p *Peer) SetPredecessor(ctx context.Context, u LinkUpdate) error {
	return p.setLink("predecessor", &p.predecessor, u)
}

func (p *Peer) setLink(name string, link *PeerRef, u LinkUpdate) error {
	if u.Peer.IsZero() {
		return errors.New("link update without a peer")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	cur := *link
	if p.splicing {
		return &LinkConflictError{Link: name, Current: cur, Splicing: true}
	}
	if u.Expect != nil && !cur.Same(*u.Expect) && !cur.Same(u.Peer) {
		return &LinkConflictError{Link: name, Current: cur}
	}
	*link = u.Peer

	p.log.WithFields(logrus.Fields{
		"link": name,
		"from": cur.String(),
		"to":   u.Peer.String(),
	}).Debug("SetLink")
	return nil
}

// Probe performs one hop of a ring probe.
func (p *Peer) Probe(ctx context.Context, origin keyspace.Key, hops int) (ProbeStep, error) {
	if p.self.Key == origin && hops > 0 {
		p.log.Infof("Probe returned after %d hops", hops)
		return ProbeStep{Done: true, Hops: hops}, nil
	}

	succ, _ := p.Successor(ctx)
	p.log.Debugf("Forwarding probe to %s", succ)
	return ProbeStep{Hops: hops + 1, Next: succ}, nil
}

// Route performs one hop of a lookup: it claims key if it falls in
// (predecessor, self], and names the successor otherwise.
func (p *Peer) Route(ctx context.Context, key keyspace.Key) (RouteStep, error) {
	succ, pred := p.Links()
	if keyspace.Between(key, pred.Key, p.self.Key) {
		return RouteStep{Owner: true}, nil
	}
	return RouteStep{Next: succ}, nil
}

// GetStored reads a locally stored value.
func (p *Peer) GetStored(ctx context.Context, key keyspace.Key) ([]byte, bool, error) {
	v, ok := p.store.Get(key)
	return v, ok, nil
}

// AddStored stores a value locally.
func (p *Peer) AddStored(ctx context.Context, key keyspace.Key, value []byte) error {
	p.log.WithField("key", key).Debug("AddStored")
	p.store.Put(key, value)
	return nil
}

// RemoveStored deletes a locally stored value. Absent keys are ignored.
func (p *Peer) RemoveStored(ctx context.Context, key keyspace.Key) error {
	p.log.WithField("key", key).Debug("RemoveStored")
	p.store.Delete(key)
	return nil
}

// Values returns every locally stored value.
func (p *Peer) Values(ctx context.Context) ([][]byte, error) {
	return p.store.Values(), nil
}

func (p *Peer) setLinks(succ, pred PeerRef) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.successor = succ
	p.predecessor = pred
}

func (p *Peer) resetLinks() {
	p.setLinks(p.self, p.self)
}

// beginJoin marks a join in progress if the peer is standalone, and reports
// whether it did. Until endSplice, link updates from other peers are refused
// with a conflict so they retry against the settled ring.
func (p *Peer) beginJoin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.successor.Same(p.self) || !p.predecessor.Same(p.self) {
		return false
	}
	p.splicing = true
	return true
}

// beginLeave marks a leave in progress if the peer is part of a ring, and
// returns the links it leaves from.
func (p *Peer) beginLeave() (succ, pred PeerRef, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.successor.Same(p.self) {
		return p.successor, p.predecessor, false
	}
	p.splicing = true
	return p.successor, p.predecessor, true
}

func (p *Peer) endSplice() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.splicing = false
}
