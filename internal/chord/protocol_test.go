package chord_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aabbfive/ChordDHT/internal/chord"
	"github.com/aabbfive/ChordDHT/internal/chord/chordtest"
	"github.com/aabbfive/ChordDHT/internal/keyspace"
	"github.com/aabbfive/ChordDHT/internal/ring"
)

// fixedSpace is a 10-bit space where names hash to the given keys.
func fixedSpace(keys map[string]uint64) keyspace.Space {
	return keyspace.MustNew(10).WithHasher(func(id string) uint64 {
		return keys[id]
	})
}

var exampleKeys = map[string]uint64{
	"a": 100,
	"b": 400,
	"c": 700,
	"x": 950,
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// requireClosed checks that successor links from every peer visit each peer
// exactly once and return to the start, and that predecessor links mirror them.
func requireClosed(t *testing.T, peers []*chord.Peer) {
	t.Helper()

	byKey := make(map[keyspace.Key]*chord.Peer, len(peers))
	for _, p := range peers {
		byKey[p.Self().Key] = p
	}

	for _, start := range peers {
		seen := make(map[keyspace.Key]bool)
		cur := start
		for i := 0; i < len(peers); i++ {
			require.False(t, seen[cur.Self().Key], "%s visited twice walking from %s", cur.Self(), start.Self())
			seen[cur.Self().Key] = true

			succ, _ := cur.Links()
			next, ok := byKey[succ.Key]
			require.True(t, ok, "%s has dangling successor %s", cur.Self(), succ)
			_, pred := next.Links()
			require.True(t, pred.Same(cur.Self()), "%s predecessor is %s, want %s", next.Self(), pred, cur.Self())
			cur = next
		}
		require.Same(t, start, cur, "walk from %s did not return to start", start.Self())
		require.Len(t, seen, len(peers))
	}
}

func viewOf(t *testing.T, peers []*chord.Peer) *ring.View {
	t.Helper()
	members := make([]ring.Member, len(peers))
	for i, p := range peers {
		members[i] = p.Self().Member()
	}
	v, err := ring.NewView(members)
	require.NoError(t, err)
	return v
}

func TestStandalonePeer(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	a := net.NewPeer("a", fixedSpace(exampleKeys))

	assert.True(t, a.Standalone())
	for _, k := range []keyspace.Key{0, 100, 101, 1023} {
		owner, err := a.Lookup(ctx, k)
		require.NoError(t, err)
		assert.True(t, owner.Same(a.Self()))
	}

	size, err := a.ProbeRing(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	require.NoError(t, a.Leave(ctx), "leaving a ring of one is a no-op")
}

func TestJoin_BIntoAThenC(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	a := net.NewPeer("a", space)
	b := net.NewPeer("b", space)
	c := net.NewPeer("c", space)

	require.NoError(t, b.Join(ctx, a.Self()))
	requireClosed(t, []*chord.Peer{a, b})

	require.NoError(t, c.Join(ctx, a.Self()))
	peers := []*chord.Peer{a, b, c}
	requireClosed(t, peers)

	aSucc, aPred := a.Links()
	assert.True(t, aSucc.Same(b.Self()))
	assert.True(t, aPred.Same(c.Self()))

	v := viewOf(t, peers)
	keys := []keyspace.Key{100, 400, 700, 101, 250, 399, 401, 699, 701, 950, 0}
	for _, from := range peers {
		for _, k := range keys {
			owner, err := from.Lookup(ctx, k)
			require.NoError(t, err)
			assert.Equal(t, v.Owner(k).Key, owner.Key, "lookup of %d from %s", k, from.Self())
		}
	}
}

func TestLookup_ExampleRing(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	peers, err := net.BuildRing(ctx, space, "c", "a", "b")
	require.NoError(t, err)

	k := space.Hash("x")
	require.Equal(t, keyspace.Key(950), k)

	for _, p := range peers {
		owner, err := p.Lookup(ctx, k)
		require.NoError(t, err)
		assert.Equal(t, "a", owner.Name, "key 950 belongs to the peer owning (700, 100]")

		size, err := p.ProbeRing(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, size)
	}
}

func TestLookup_OwnershipTotality(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	keys := map[string]uint64{"p1": 100, "p2": 250, "p3": 400, "p4": 700, "p5": 900}
	space := fixedSpace(keys)

	peers, err := net.BuildRing(ctx, space, "p3", "p5", "p1", "p4", "p2")
	require.NoError(t, err)
	requireClosed(t, peers)

	v := viewOf(t, peers)
	for k := keyspace.Key(0); uint64(k) < space.Size(); k++ {
		want := v.Owner(k)
		owners := 0
		for _, p := range peers {
			_, pred := p.Links()
			if keyspace.Between(k, pred.Key, p.Self().Key) {
				owners++
			}
		}
		require.Equal(t, 1, owners, "key %d", k)

		for _, p := range peers {
			owner, err := p.Lookup(ctx, k)
			require.NoError(t, err)
			require.Equal(t, want.Key, owner.Key, "lookup of %d from %s", k, p.Self())
		}
	}
}

func TestJoin_ManyPeersClosure(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := keyspace.MustNew(32)
	rng := rand.New(rand.NewSource(7))

	peers := []*chord.Peer{net.NewPeer("node0", space)}
	for i := 1; i < 24; i++ {
		p := net.NewPeer(fmt.Sprintf("node%d", i), space)
		entry := peers[rng.Intn(len(peers))]
		require.NoError(t, p.Join(ctx, entry.Self()))
		peers = append(peers, p)
	}
	requireClosed(t, peers)

	members, err := peers[5].Members(ctx)
	require.NoError(t, err)
	require.Len(t, members, len(peers))

	traversal := make([]ring.Member, len(members))
	for i, m := range members {
		traversal[i] = m.Member()
	}
	_, err = ring.FromTraversal(traversal)
	require.NoError(t, err, "successor order must follow circular key order")

	size, err := peers[11].ProbeRing(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(peers), size)
}

func TestLeave_RestoresClosure(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	peers, err := net.BuildRing(ctx, space, "a", "b", "c")
	require.NoError(t, err)
	a, b, c := peers[0], peers[1], peers[2]

	require.NoError(t, b.Leave(ctx))

	requireClosed(t, []*chord.Peer{a, c})
	aSucc, _ := a.Links()
	_, cPred := c.Links()
	assert.True(t, aSucc.Same(c.Self()))
	assert.True(t, cPred.Same(a.Self()))
	assert.True(t, b.Standalone())

	size, err := a.ProbeRing(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	owner, err := a.Lookup(ctx, 400)
	require.NoError(t, err)
	assert.Equal(t, "c", owner.Name, "c takes over b's interval")

	// Down to one peer and back.
	require.NoError(t, c.Leave(ctx))
	assert.True(t, a.Standalone())
	require.NoError(t, b.Join(ctx, a.Self()))
	requireClosed(t, []*chord.Peer{a, b})
}

func TestJoin_Rejections(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(map[string]uint64{"a": 100, "b": 400, "twin": 400})

	peers, err := net.BuildRing(ctx, space, "a", "b")
	require.NoError(t, err)

	twin := net.NewPeer("twin", space)
	err = twin.Join(ctx, peers[0].Self())
	require.ErrorIs(t, err, chord.ErrKeyCollision)
	assert.True(t, twin.Standalone())
	requireClosed(t, peers)

	err = peers[1].Join(ctx, peers[0].Self())
	require.ErrorIs(t, err, chord.ErrAlreadyJoined)
}

func TestJoin_UnreachableEntry(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	a := net.NewPeer("a", space)
	b := net.NewPeer("b", space)
	net.SetDown(a.Self().Addr, true)

	err := b.Join(ctx, a.Self())
	require.ErrorIs(t, err, chord.ErrTransport)
	assert.True(t, b.Standalone())
	assert.True(t, a.Standalone())
}

func TestJoin_PartialFailureRollsBack(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	peers, err := net.BuildRing(ctx, space, "a", "c")
	require.NoError(t, err)
	a, c := peers[0], peers[1]
	b := net.NewPeer("b", space)

	// a.successor is moved to b, then c refuses the predecessor update.
	net.FailNext(c.Self().Addr, "SetPredecessor", 1)

	err = b.Join(ctx, a.Self())
	require.Error(t, err)
	require.ErrorIs(t, err, chord.ErrTransport)
	require.ErrorIs(t, err, chordtest.ErrInjected)

	var se *chord.SpliceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "join", se.Op)
	assert.True(t, se.RolledBack)

	requireClosed(t, []*chord.Peer{a, c})
	assert.True(t, b.Standalone())

	// The join can simply be retried.
	require.NoError(t, b.Join(ctx, a.Self()))
	requireClosed(t, []*chord.Peer{a, b, c})
}

func TestJoin_FailedRollbackIsReported(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	peers, err := net.BuildRing(ctx, space, "a", "c")
	require.NoError(t, err)
	a, c := peers[0], peers[1]
	b := net.NewPeer("b", space)

	net.FailNext(c.Self().Addr, "SetPredecessor", 1)
	// Let the splice reach a, then fail the rollback.
	net.FailAfter(a.Self().Addr, "SetSuccessor", 1, 1)

	err = b.Join(ctx, a.Self())
	var se *chord.SpliceError
	require.True(t, errors.As(err, &se))
	assert.False(t, se.RolledBack)
	assert.Contains(t, err.Error(), "ring may be inconsistent")

	aSucc, _ := a.Links()
	_, cPred := c.Links()
	assert.True(t, aSucc.Same(b.Self()), "the half-applied splice is left in place")
	assert.True(t, cPred.Same(a.Self()))
}

func TestLeave_PartialFailureRollsBack(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	peers, err := net.BuildRing(ctx, space, "a", "b", "c")
	require.NoError(t, err)
	b, c := peers[1], peers[2]

	net.FailNext(c.Self().Addr, "SetPredecessor", 1)

	err = b.Leave(ctx)
	var se *chord.SpliceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "leave", se.Op)
	assert.True(t, se.RolledBack)
	require.ErrorIs(t, err, chord.ErrTransport)

	requireClosed(t, peers)

	require.NoError(t, b.Leave(ctx))
	requireClosed(t, []*chord.Peer{peers[0], c})
}

func TestLookup_HopCeiling(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)
	limit := func(cfg *chord.Config) { cfg.MaxHops = 8 }

	a := net.NewPeer("a", space, limit)
	b := net.NewPeer("b", space, limit)

	// a -> b -> a, but the intervals (50, 100] and (300, 400] leave gaps.
	require.NoError(t, a.SetSuccessor(ctx, chord.Set(b.Self())))
	require.NoError(t, b.SetSuccessor(ctx, chord.Set(a.Self())))
	require.NoError(t, a.SetPredecessor(ctx, chord.Set(chord.PeerRef{Name: "ghost1", Addr: "ghost1.mem", Key: 50})))
	require.NoError(t, b.SetPredecessor(ctx, chord.Set(chord.PeerRef{Name: "ghost2", Addr: "ghost2.mem", Key: 300})))

	_, err := a.Lookup(ctx, 200)
	require.ErrorIs(t, err, chord.ErrInconsistentRing)
	assert.LessOrEqual(t, net.Calls(b.Self().Addr, "Route"), 5)

	owner, err := a.Lookup(ctx, 350)
	require.NoError(t, err)
	assert.Equal(t, "b", owner.Name)
}

func TestWalk_BrokenSuccessorChain(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	peers, err := net.BuildRing(ctx, space, "a", "b", "c")
	require.NoError(t, err)

	net.SetDown(peers[1].Self().Addr, true)
	_, err = peers[0].Members(ctx)
	require.ErrorIs(t, err, chord.ErrTransport)

	_, err = peers[0].ProbeRing(ctx)
	require.ErrorIs(t, err, chord.ErrTransport)
}

func TestSetLink_Conditional(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := fixedSpace(exampleKeys)

	a := net.NewPeer("a", space)
	b := net.NewPeer("b", space)
	c := net.NewPeer("c", space)

	// a.successor is a; swapping from b is rejected.
	err := a.SetSuccessor(ctx, chord.Swap(b.Self(), c.Self()))
	require.ErrorIs(t, err, chord.ErrLinkConflict)
	var conflict *chord.LinkConflictError
	require.True(t, errors.As(err, &conflict))
	assert.True(t, conflict.Current.Same(a.Self()))

	require.NoError(t, a.SetSuccessor(ctx, chord.Swap(a.Self(), b.Self())))
	// Replaying an applied update succeeds.
	require.NoError(t, a.SetSuccessor(ctx, chord.Swap(a.Self(), b.Self())))
	succ, _ := a.Links()
	assert.True(t, succ.Same(b.Self()))

	require.Error(t, a.SetPredecessor(ctx, chord.Set(chord.PeerRef{})))
}

func TestJoin_RefusesSplicesWhileJoining(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := keyspace.MustNew(32)

	a := net.NewPeer("a", space)
	b := net.NewPeer("b", space)
	x := net.NewPeer("x", space, func(c *chord.Config) { c.MaxJoinAttempts = 3 })

	// x tries to join through a while a is between reading b's links and
	// splicing itself in.
	var xErr error
	net.OnCall(b.Self().Addr, "Predecessor", func() {
		xErr = x.Join(ctx, a.Self())
	})

	require.NoError(t, a.Join(ctx, b.Self()))
	require.ErrorIs(t, xErr, chord.ErrLinkConflict)
	assert.True(t, x.Standalone())
	requireClosed(t, []*chord.Peer{a, b})

	require.NoError(t, x.Join(ctx, a.Self()))
	requireClosed(t, []*chord.Peer{a, b, x})

	size, err := x.ProbeRing(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestJoin_ThroughEachOther(t *testing.T) {
	ctx := testContext(t)
	space := keyspace.MustNew(32)

	for i := 0; i < 20; i++ {
		net := chordtest.NewNetwork()
		a := net.NewPeer(fmt.Sprintf("a-%d", i), space)
		b := net.NewPeer(fmt.Sprintf("b-%d", i), space)

		var wg sync.WaitGroup
		var errA, errB error
		wg.Add(2)
		go func() {
			defer wg.Done()
			errA = a.Join(ctx, b.Self())
		}()
		go func() {
			defer wg.Done()
			errB = b.Join(ctx, a.Self())
		}()
		wg.Wait()

		// A peer spliced in by the other before its own join started
		// reports ErrAlreadyJoined; at least one join must succeed.
		for _, err := range []error{errA, errB} {
			if err != nil {
				require.ErrorIs(t, err, chord.ErrAlreadyJoined, "round %d", i)
			}
		}
		require.False(t, errA != nil && errB != nil, "round %d: both joins failed", i)
		requireClosed(t, []*chord.Peer{a, b})
	}
}

func TestJoin_Concurrent(t *testing.T) {
	ctx := testContext(t)
	net := chordtest.NewNetwork()
	space := keyspace.MustNew(32)

	seed := net.NewPeer("seed", space)
	joiners := make([]*chord.Peer, 8)
	for i := range joiners {
		joiners[i] = net.NewPeer(fmt.Sprintf("joiner-%d", i), space)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(joiners))
	for i, p := range joiners {
		wg.Add(1)
		go func(i int, p *chord.Peer) {
			defer wg.Done()
			errs[i] = p.Join(ctx, seed.Self())
		}(i, p)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "joiner %d", i)
	}
	requireClosed(t, append([]*chord.Peer{seed}, joiners...))

	size, err := seed.ProbeRing(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(joiners)+1, size)
}
