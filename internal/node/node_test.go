package node

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
	"github.com/aabbfive/ChordDHT/internal/chord"
	"github.com/aabbfive/ChordDHT/internal/config"
	"github.com/aabbfive/ChordDHT/internal/discovery"
	"github.com/aabbfive/ChordDHT/internal/keyspace"
)

var exampleKeys = map[string]uint64{
	"a": 100, "b": 400, "c": 700,
	"x": 950, "k1": 50, "k2": 300, "k3": 600, "k4": 800,
}

var exampleSpace = keyspace.MustNew(10).WithHasher(func(id string) uint64 { return exampleKeys[id] })

// testCluster runs nodes in process over bufconn listeners.
type testCluster struct {
	t         *testing.T
	mu        sync.Mutex
	listeners map[string]*bufconn.Listener
	directory *discovery.Memory
	nodes     map[string]*Node
	clients   *ClientManager
}

func newTestCluster(t *testing.T) *testCluster {
	c := &testCluster{
		t:         t,
		listeners: make(map[string]*bufconn.Listener),
		directory: discovery.NewMemory(),
		nodes:     make(map[string]*Node),
	}
	c.clients = NewClientManager(time.Second, grpc.WithContextDialer(c.dial))
	t.Cleanup(func() {
		c.clients.Close()
		for _, n := range c.nodes {
			n.Stop()
		}
	})
	return c
}

func (c *testCluster) dial(ctx context.Context, addr string) (net.Conn, error) {
	c.mu.Lock()
	lis, ok := c.listeners[addr]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no listener for %s", addr)
	}
	return lis.DialContext(ctx)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// start creates a node and serves it in the background.
func (c *testCluster) start(name string) *Node {
	c.t.Helper()

	cfg := config.Default()
	cfg.Name = name
	cfg.ListenAddr = name + ".buf"
	cfg.CallTimeout = time.Second

	lis := bufconn.Listen(1 << 20)
	c.mu.Lock()
	c.listeners[cfg.ListenAddr] = lis
	c.mu.Unlock()

	n, err := NewNode(cfg, c.directory,
		WithLogger(quietLogger()),
		WithKeySpace(exampleSpace),
		WithDialOptions(grpc.WithContextDialer(c.dial)),
	)
	require.NoError(c.t, err)
	c.nodes[name] = n

	go n.Serve(lis)
	require.Eventually(c.t, func() bool {
		_, err := c.directory.Resolve(context.Background(), name)
		return err == nil
	}, time.Second, 5*time.Millisecond)
	return n
}

// exampleRing builds the ring a(100) -> b(400) -> c(700).
func (c *testCluster) exampleRing(ctx context.Context) (a, b, cc *Node) {
	c.t.Helper()
	a = c.start("a")
	b = c.start("b")
	cc = c.start("c")
	require.NoError(c.t, b.Join(ctx, "a"))
	require.NoError(c.t, cc.Join(ctx, "a"))
	return a, b, cc
}

func (c *testCluster) dhtClient(name string) chordpb.DHTClient {
	c.t.Helper()
	client, err := c.clients.DHTClient(name + ".buf")
	require.NoError(c.t, err)
	return client
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNode_JoinOverGRPC(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	a, b, cc := c.exampleRing(ctx)

	for _, tc := range []struct {
		node       *Node
		succ, pred string
	}{
		{a, "b", "c"},
		{b, "c", "a"},
		{cc, "a", "b"},
	} {
		succ, pred := tc.node.Peer().Links()
		assert.Equal(t, tc.succ, succ.Name, "%s successor", tc.node.Peer().Self().Name)
		assert.Equal(t, tc.pred, pred.Name, "%s predecessor", tc.node.Peer().Self().Name)
		assert.Equal(t, tc.succ+".buf", succ.Addr)
	}

	size, err := b.DHT().RingSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestNode_DHTServiceRoundTrip(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	a, _, _ := c.exampleRing(ctx)

	_, err := c.dhtClient("b").Put(ctx, &chordpb.PutRequest{Key: "x", Value: []byte("v")})
	require.NoError(t, err)

	v, ok := a.Peer().Store().Get(950)
	require.True(t, ok, "hash 950 belongs to a")
	assert.Equal(t, "v", string(v))

	resp, err := c.dhtClient("c").Get(ctx, &chordpb.GetRequest{Key: "x"})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "v", string(resp.Value))

	_, err = c.dhtClient("a").Remove(ctx, &chordpb.RemoveRequest{Key: "x"})
	require.NoError(t, err)

	resp, err = c.dhtClient("b").Get(ctx, &chordpb.GetRequest{Key: "x"})
	require.NoError(t, err)
	assert.False(t, resp.Found)

	_, err = c.dhtClient("a").Put(ctx, &chordpb.PutRequest{Key: ""})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestNode_ListAllProbeAndRing(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	c.exampleRing(ctx)

	client := c.dhtClient("a")
	for key, value := range map[string]string{"k1": "v1", "k2": "v2", "k3": "v3", "k4": "v4"} {
		_, err := client.Put(ctx, &chordpb.PutRequest{Key: key, Value: []byte(value)})
		require.NoError(t, err)
	}

	all, err := c.dhtClient("b").ListAll(ctx, &chordpb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"v2", "v3", "v1", "v4"}, all.Values)

	probe, err := c.dhtClient("c").Probe(ctx, &chordpb.Empty{})
	require.NoError(t, err)
	assert.True(t, probe.Done)
	assert.EqualValues(t, 3, probe.Hops)

	ring, err := c.dhtClient("b").Ring(ctx, &chordpb.RingRequest{Key: "x"})
	require.NoError(t, err)
	require.Len(t, ring.Members, 3)
	assert.Equal(t, "b", ring.Members[0].Name)
	assert.Equal(t, "c", ring.Members[1].Name)
	assert.Equal(t, "a", ring.Members[2].Name)
	assert.EqualValues(t, 950, ring.Key)
	assert.Equal(t, "a", ring.GetOwner().Name)
}

func TestNode_LeaveOverGRPC(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	a, b, cc := c.exampleRing(ctx)

	require.NoError(t, b.Leave(ctx))

	succ, _ := a.Peer().Links()
	assert.Equal(t, "c", succ.Name)
	_, pred := cc.Peer().Links()
	assert.Equal(t, "a", pred.Name)
	assert.True(t, b.Peer().Standalone())

	size, err := a.DHT().RingSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestNode_JoinUnknownName(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	a := c.start("a")

	err := a.Join(ctx, "nobody")
	require.ErrorIs(t, err, discovery.ErrNotRegistered)
	assert.True(t, a.Peer().Standalone())
}

func TestNode_RemoteLinkConflict(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	a, b, _ := c.exampleRing(ctx)

	remote, err := c.clients.Peer(a.Peer().Self())
	require.NoError(t, err)

	// a's successor is b, not a.
	err = remote.SetSuccessor(ctx, chord.Swap(a.Peer().Self(), b.Peer().Self()))
	require.NoError(t, err, "already pointing at b, so the update is a no-op")

	stranger := chord.PeerRef{Name: "z", Addr: "z.buf", Key: 5}
	err = remote.SetSuccessor(ctx, chord.Swap(stranger, stranger))
	require.ErrorIs(t, err, chord.ErrLinkConflict)
	var conflict *chord.LinkConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "b", conflict.Current.Name)

	key, err := remote.Key(ctx)
	require.NoError(t, err)
	assert.Equal(t, keyspace.Key(100), key)
}

func TestNode_UnreachablePeerIsTransportError(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	a, _, cc := c.exampleRing(ctx)

	cc.Stop()

	_, _, err := a.DHT().Get(ctx, "k3") // owned by c
	require.ErrorIs(t, err, chord.ErrTransport)

	// Keys owned by live peers are still served.
	require.NoError(t, a.DHT().Put(ctx, "k1", []byte("v1")))
	require.NoError(t, a.DHT().Put(ctx, "k2", []byte("v2")))
}

func TestNode_RemoteLookup(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	a, b, _ := c.exampleRing(ctx)

	remote, err := c.clients.Peer(a.Peer().Self())
	require.NoError(t, err)

	owner, err := remote.Lookup(ctx, exampleSpace.Hash("k2"))
	require.NoError(t, err)
	assert.True(t, owner.Same(b.Peer().Self()), "owner = %s", owner)

	owner, err = remote.Lookup(ctx, exampleSpace.Hash("x"))
	require.NoError(t, err)
	assert.True(t, owner.Same(a.Peer().Self()), "owner = %s", owner)
}

// stalledPeerServer never answers a lookup before the caller gives up.
type stalledPeerServer struct {
	chordpb.UnimplementedPeerServer
}

func (stalledPeerServer) Lookup(ctx context.Context, _ *chordpb.KeyRequest) (*chordpb.PeerRef, error) {
	<-ctx.Done()
	return nil, status.FromContextError(ctx.Err()).Err()
}

func TestRemotePeer_LookupHasDeadline(t *testing.T) {
	ctx := testContext(t)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	chordpb.RegisterPeerServer(srv, stalledPeerServer{})
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	cm := NewClientManager(50*time.Millisecond, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	t.Cleanup(func() { cm.Close() })
	cm.SetLookupHops(1)

	remote, err := cm.Peer(chord.PeerRef{Name: "stalled", Addr: "stalled.buf", Key: 1})
	require.NoError(t, err)

	start := time.Now()
	_, err = remote.Lookup(ctx, 42)
	require.ErrorIs(t, err, chord.ErrTransport)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNode_Health(t *testing.T) {
	ctx := testContext(t)
	c := newTestCluster(t)
	c.start("a")

	conn, err := c.clients.conn("a.buf")
	require.NoError(t, err)
	health := healthpb.NewHealthClient(conn)

	for _, service := range []string{"", "chord.Peer", "chord.DHT"} {
		resp, err := health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err, service)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status, service)
	}
}

func TestNewNode_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.ListenAddr = "a.buf"
	_, err := NewNode(cfg, discovery.NewMemory(), WithLogger(quietLogger()))
	require.Error(t, err)
}
