package chord

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

const (
	rollbackTimeout = 5 * time.Second
	joinBackoffStep = 2 * time.Millisecond
)

// Join inserts the peer into the ring reachable from entry, between the
// first predecessor/peer pair whose interval contains the peer's key. While
// a splice attempt runs, other peers cannot splice against this one.
//
// The splice sets the predecessor's successor and then the entry's
// predecessor, each as a conditional update. A conflict means another splice
// touched the same links; the applied half is undone and the join retried.
// Any other failure is returned as a *SpliceError.
func (p *Peer) Join(ctx context.Context, entry PeerRef) error {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	if entry.Same(p.self) {
		return fmt.Errorf("%w: entry %s has this peer's key", ErrKeyCollision, entry)
	}

	log := p.log.WithField("entry", entry.String())
	log.Info("Joining ring")

	var lastErr error
	for attempt := 1; attempt <= p.maxJoinAttempts; attempt++ {
		err := p.attemptJoin(ctx, entry)
		if err == nil {
			succ, pred := p.Links()
			log.WithFields(logrus.Fields{
				"successor":   succ.String(),
				"predecessor": pred.String(),
			}).Info("Joined ring")
			return nil
		}
		if errors.Is(err, ErrAlreadyJoined) && attempt > 1 {
			return p.joinedMeanwhile(ctx, entry)
		}

		var se *SpliceError
		if !errors.Is(err, ErrLinkConflict) || (errors.As(err, &se) && !se.RolledBack) {
			log.WithError(err).Error("Join failed")
			return err
		}

		lastErr = err
		log.WithError(err).WithField("attempt", attempt).Debug("Join raced with another splice, retrying")
		if err := sleepCtx(ctx, backoff(attempt)); err != nil {
			return err
		}
	}
	return fmt.Errorf("join gave up after %d attempts: %w", p.maxJoinAttempts, lastErr)
}

// attemptJoin runs one splice attempt with the peer marked as splicing. The
// mark is dropped between attempts so that two peers joining through each
// other do not refuse one another until both give up.
func (p *Peer) attemptJoin(ctx context.Context, entry PeerRef) error {
	if !p.beginJoin() {
		return ErrAlreadyJoined
	}
	defer p.endSplice()
	return p.tryJoin(ctx, entry)
}

// joinedMeanwhile handles a peer that another peer spliced into a ring
// while it was backing off: the join succeeded if that ring holds entry.
func (p *Peer) joinedMeanwhile(ctx context.Context, entry PeerRef) error {
	members, err := p.Members(ctx)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.Same(entry) {
			p.log.WithField("entry", entry.String()).Info("Joined ring through a concurrent splice")
			return nil
		}
	}
	return ErrAlreadyJoined
}

func (p *Peer) tryJoin(ctx context.Context, entry PeerRef) error {
	pred, succ, err := p.findSplicePoint(ctx, entry)
	if err != nil {
		return err
	}
	return p.spliceIn(ctx, pred, succ)
}

// findSplicePoint walks successors from entry until the peer's key falls in
// (predecessor(entry), entry].
func (p *Peer) findSplicePoint(ctx context.Context, entry PeerRef) (PeerRef, PeerRef, error) {
	r, err := p.Remote(entry)
	if err != nil {
		return PeerRef{}, PeerRef{}, err
	}
	// The entry handle may come from a name lookup; trust the key it reports.
	if entry.Key, err = r.Key(ctx); err != nil {
		return PeerRef{}, PeerRef{}, err
	}

	for hop := 0; hop <= p.maxHops; hop++ {
		if entry.Key == p.self.Key {
			return PeerRef{}, PeerRef{}, fmt.Errorf("%w: %s has key %d", ErrKeyCollision, entry, entry.Key)
		}

		pred, err := r.Predecessor(ctx)
		if err != nil {
			return PeerRef{}, PeerRef{}, err
		}
		if pred.IsZero() {
			return PeerRef{}, PeerRef{}, inconsistent("%s has no predecessor", entry)
		}
		if keyspace.Between(p.self.Key, pred.Key, entry.Key) {
			return pred, entry, nil
		}

		if entry, err = r.Successor(ctx); err != nil {
			return PeerRef{}, PeerRef{}, err
		}
		if r, err = p.Remote(entry); err != nil {
			return PeerRef{}, PeerRef{}, err
		}
	}
	return PeerRef{}, PeerRef{}, inconsistent("no splice point for key %d within %d hops", p.self.Key, p.maxHops)
}

func (p *Peer) spliceIn(ctx context.Context, pred, succ PeerRef) error {
	// Own links first, so lookups forwarded here mid-splice route correctly.
	p.setLinks(succ, pred)

	predR, err := p.Remote(pred)
	if err != nil {
		p.resetLinks()
		return &SpliceError{Op: "join", Stage: "dial predecessor", RolledBack: true, Err: err}
	}
	if err := predR.SetSuccessor(ctx, Swap(succ, p.self)); err != nil {
		rolledBack := errors.Is(err, ErrLinkConflict) || p.rollback(ctx, predR.SetSuccessor, Swap(p.self, succ))
		p.resetLinks()
		return &SpliceError{Op: "join", Stage: "set predecessor's successor", RolledBack: rolledBack, Err: err}
	}

	succR, err := p.Remote(succ)
	if err == nil {
		err = succR.SetPredecessor(ctx, Swap(pred, p.self))
	}
	if err != nil {
		rolledBack := p.rollback(ctx, predR.SetSuccessor, Swap(p.self, succ))
		if succR != nil && !errors.Is(err, ErrLinkConflict) {
			// A failed call may still have been applied remotely.
			rolledBack = p.rollback(ctx, succR.SetPredecessor, Swap(p.self, pred)) && rolledBack
		}
		p.resetLinks()
		return &SpliceError{Op: "join", Stage: "set successor's predecessor", RolledBack: rolledBack, Err: err}
	}
	return nil
}

// Leave splices the peer out of its ring and resets its links to itself.
// Stored entries are not handed over and are lost to the ring.
func (p *Peer) Leave(ctx context.Context) error {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	succ, pred, ok := p.beginLeave()
	if !ok {
		return nil
	}
	defer p.endSplice()

	log := p.log.WithFields(logrus.Fields{
		"successor":   succ.String(),
		"predecessor": pred.String(),
	})
	log.Info("Leaving ring")

	predR, err := p.Remote(pred)
	if err != nil {
		return &SpliceError{Op: "leave", Stage: "dial predecessor", RolledBack: true, Err: err}
	}
	if err := predR.SetSuccessor(ctx, Swap(p.self, succ)); err != nil {
		rolledBack := errors.Is(err, ErrLinkConflict) || p.rollback(ctx, predR.SetSuccessor, Swap(succ, p.self))
		log.WithError(err).Error("Leave failed")
		return &SpliceError{Op: "leave", Stage: "set predecessor's successor", RolledBack: rolledBack, Err: err}
	}

	succR, err := p.Remote(succ)
	if err == nil {
		err = succR.SetPredecessor(ctx, Swap(p.self, pred))
	}
	if err != nil {
		rolledBack := p.rollback(ctx, predR.SetSuccessor, Swap(succ, p.self))
		if succR != nil && !errors.Is(err, ErrLinkConflict) {
			rolledBack = p.rollback(ctx, succR.SetPredecessor, Swap(pred, p.self)) && rolledBack
		}
		log.WithError(err).Error("Leave failed")
		return &SpliceError{Op: "leave", Stage: "set successor's predecessor", RolledBack: rolledBack, Err: err}
	}

	p.resetLinks()
	if dropped := p.store.Len(); dropped > 0 {
		log.WithField("entries", dropped).Warn("Left ring with stored entries; they are no longer reachable")
	}
	log.Info("Left ring")
	return nil
}

func (p *Peer) rollback(ctx context.Context, set func(context.Context, LinkUpdate) error, u LinkUpdate) bool {
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	if err := set(rbCtx, u); err != nil {
		p.log.WithError(err).WithField("link", u.Peer.String()).Error("Rollback failed")
		return false
	}
	return true
}

// Lookup returns the owner of key by asking peers one hop at a time,
// starting here. It fails with ErrInconsistentRing past the hop ceiling.
func (p *Peer) Lookup(ctx context.Context, key keyspace.Key) (PeerRef, error) {
	var cur Remote = p
	for hop := 0; hop <= p.maxHops; hop++ {
		if err := ctx.Err(); err != nil {
			return PeerRef{}, err
		}

		step, err := cur.Route(ctx, key)
		if err != nil {
			return PeerRef{}, err
		}
		if step.Owner {
			return cur.Ref(), nil
		}
		if step.Next.IsZero() {
			return PeerRef{}, inconsistent("%s has no successor", cur.Ref())
		}
		if cur, err = p.Remote(step.Next); err != nil {
			return PeerRef{}, err
		}
	}
	return PeerRef{}, inconsistent("lookup of key %d exceeded %d hops", key, p.maxHops)
}

// ProbeRing sends a probe around the ring and returns the number of hops it
// took to come back, which is the ring size.
func (p *Peer) ProbeRing(ctx context.Context) (int, error) {
	var cur Remote = p
	hops := 0
	for i := 0; i <= p.maxHops+1; i++ {
		step, err := cur.Probe(ctx, p.self.Key, hops)
		if err != nil {
			return 0, err
		}
		if step.Done {
			return step.Hops, nil
		}
		hops = step.Hops
		if cur, err = p.Remote(step.Next); err != nil {
			return 0, err
		}
	}
	return 0, inconsistent("probe did not return within %d hops", p.maxHops)
}

// Walk visits every peer once in successor order, starting with this one.
func (p *Peer) Walk(ctx context.Context, visit func(Remote) error) error {
	var cur Remote = p
	for hop := 0; ; hop++ {
		if hop > p.maxHops {
			return inconsistent("successor walk exceeded %d hops", p.maxHops)
		}
		if err := visit(cur); err != nil {
			return err
		}

		next, err := cur.Successor(ctx)
		if err != nil {
			return err
		}
		if next.IsZero() {
			return inconsistent("%s has no successor", cur.Ref())
		}
		if next.Same(p.self) {
			return nil
		}
		if cur, err = p.Remote(next); err != nil {
			return err
		}
	}
}

// Members returns the peers of the ring in successor order, starting here.
func (p *Peer) Members(ctx context.Context) ([]PeerRef, error) {
	var members []PeerRef
	err := p.Walk(ctx, func(r Remote) error {
		members = append(members, r.Ref())
		return nil
	})
	return members, err
}

func backoff(attempt int) time.Duration {
	return time.Duration(attempt)*joinBackoffStep + time.Duration(rand.Int63n(int64(joinBackoffStep)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
