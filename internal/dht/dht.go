package dht

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aabbfive/ChordDHT/internal/chord"
	"github.com/aabbfive/ChordDHT/internal/keyspace"
	"github.com/aabbfive/ChordDHT/internal/ring"
)

// DHT serves get/put/remove for any key from a single peer.
type DHT struct {
	peer *chord.Peer
	log  logrus.FieldLogger
}

// New creates a facade over peer.
func New(peer *chord.Peer, logger logrus.FieldLogger) *DHT {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &DHT{
		peer: peer,
		log:  logger.WithField("peer", peer.Self().Name),
	}
}

// Peer returns the local peer.
func (d *DHT) Peer() *chord.Peer {
	return d.peer
}

// owner hashes key and resolves the peer responsible for it.
func (d *DHT) owner(ctx context.Context, key string) (keyspace.Key, chord.Remote, error) {
	k := d.peer.Space().Hash(key)
	ref, err := d.peer.Lookup(ctx, k)
	if err != nil {
		return k, nil, err
	}
	r, err := d.peer.Remote(ref)
	if err != nil {
		return k, nil, err
	}
	return k, r, nil
}

// Put stores value under key on the owning peer.
func (d *DHT) Put(ctx context.Context, key string, value []byte) error {
	k, owner, err := d.owner(ctx, key)
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	d.log.WithFields(logrus.Fields{"key": key, "hash": k, "owner": owner.Ref().Name}).Debug("Put")

	if err := owner.AddStored(ctx, k, value); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key. found is false when the key was
// never stored or has been removed.
func (d *DHT) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	k, owner, err := d.owner(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	d.log.WithFields(logrus.Fields{"key": key, "hash": k, "owner": owner.Ref().Name}).Debug("Get")

	value, found, err = owner.GetStored(ctx, k)
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, found, nil
}

// Remove deletes key from the owning peer. Removing an absent key is a no-op.
func (d *DHT) Remove(ctx context.Context, key string) error {
	k, owner, err := d.owner(ctx, key)
	if err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	d.log.WithFields(logrus.Fields{"key": key, "hash": k, "owner": owner.Ref().Name}).Debug("Remove")

	if err := owner.RemoveStored(ctx, k); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// ListAll walks the ring once from the local peer and returns every stored
// value as a string, in ring order.
func (d *DHT) ListAll(ctx context.Context) ([]string, error) {
	var all []string
	err := d.peer.Walk(ctx, func(r chord.Remote) error {
		values, err := r.Values(ctx)
		if err != nil {
			return err
		}
		for _, v := range values {
			all = append(all, string(v))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list all: %w", err)
	}
	return all, nil
}

// RingSize probes the ring and returns the number of peers.
func (d *DHT) RingSize(ctx context.Context) (int, error) {
	return d.peer.ProbeRing(ctx)
}

// RingInfo describes the ring as seen from one peer.
type RingInfo struct {
	// Members in successor order starting at the local peer.
	Members []chord.PeerRef
	Key     keyspace.Key
	// Owner of Key as found by routing.
	Owner chord.PeerRef
}

// Ring walks the ring, checks that successor order follows key order, and
// locates the owner of key. Routing and interval math must agree on the
// owner, otherwise the ring is reported inconsistent.
func (d *DHT) Ring(ctx context.Context, key string) (*RingInfo, error) {
	members, err := d.peer.Members(ctx)
	if err != nil {
		return nil, fmt.Errorf("ring: %w", err)
	}

	traversal := make([]ring.Member, len(members))
	for i, m := range members {
		traversal[i] = m.Member()
	}
	view, err := ring.FromTraversal(traversal)
	if err != nil {
		return nil, fmt.Errorf("ring: %w: %v", chord.ErrInconsistentRing, err)
	}

	info := &RingInfo{
		Members: members,
		Key:     d.peer.Space().Hash(key),
	}
	info.Owner, err = d.peer.Lookup(ctx, info.Key)
	if err != nil {
		return nil, fmt.Errorf("ring: %w", err)
	}
	if expected := view.Owner(info.Key); expected.Key != info.Owner.Key {
		return nil, fmt.Errorf("ring: %w: key %d routed to %s, intervals give %s",
			chord.ErrInconsistentRing, info.Key, info.Owner.Name, expected.ID)
	}
	return info, nil
}
