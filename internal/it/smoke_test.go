package it

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
)

func startRing(t *testing.T, ctx context.Context, basePort, size int) *Cluster {
	t.Helper()
	if _, err := os.Stat(DefaultBinary); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test. Build with: go build -o chordnode ./cmd/chordnode")
	}

	cluster, err := NewCluster(DefaultBinary, basePort)
	require.NoError(t, err)
	t.Cleanup(cluster.Stop)

	require.NoError(t, cluster.StartRing(ctx, size), "Failed to start ring")
	return cluster
}

func TestSmoke_PutGetRemove_SingleKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster := startRing(t, ctx, 61051, 3)

	writer := cluster.GetNode("n1").GetClient()
	reader := cluster.GetNode("n3").GetClient()

	// Put
	putCtx, putCancel := context.WithTimeout(ctx, 10*time.Second)
	_, err := writer.Put(putCtx, &chordpb.PutRequest{Key: "test-key", Value: []byte("test-value")})
	putCancel()
	require.NoError(t, err)

	// Get from another node
	getCtx, getCancel := context.WithTimeout(ctx, 10*time.Second)
	getResp, err := reader.Get(getCtx, &chordpb.GetRequest{Key: "test-key"})
	getCancel()
	require.NoError(t, err)
	assert.True(t, getResp.Found)
	assert.Equal(t, "test-value", string(getResp.Value))

	// Remove
	delCtx, delCancel := context.WithTimeout(ctx, 10*time.Second)
	_, err = reader.Remove(delCtx, &chordpb.RemoveRequest{Key: "test-key"})
	delCancel()
	require.NoError(t, err)

	// Get after remove
	getCtx2, getCancel2 := context.WithTimeout(ctx, 10*time.Second)
	getResp2, err := writer.Get(getCtx2, &chordpb.GetRequest{Key: "test-key"})
	getCancel2()
	require.NoError(t, err)
	assert.False(t, getResp2.Found, "Expected key to be absent after remove")
}

func TestSmoke_RingShape(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster := startRing(t, ctx, 61151, 4)

	for _, name := range []string{"n1", "n2", "n3", "n4"} {
		probe, err := cluster.GetNode(name).GetClient().Probe(ctx, &chordpb.Empty{})
		require.NoError(t, err, name)
		assert.EqualValues(t, 4, probe.Hops, "probe from %s", name)
	}

	ring, err := cluster.GetNode("n2").GetClient().Ring(ctx, &chordpb.RingRequest{Key: "some-key"})
	require.NoError(t, err)
	require.Len(t, ring.Members, 4)
	assert.Equal(t, "n2", ring.Members[0].Name)
	require.NotNil(t, ring.Owner)
}

func TestSmoke_GracefulLeave(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster := startRing(t, ctx, 61251, 3)

	require.NoError(t, cluster.LeaveNode("n2", 15*time.Second))

	client := cluster.GetNode("n1").GetClient()
	probe, err := client.Probe(ctx, &chordpb.Empty{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, probe.Hops)

	// The remaining ring still serves every key.
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("after-leave-%d", i)
		_, err := client.Put(ctx, &chordpb.PutRequest{Key: key, Value: []byte(key)})
		require.NoError(t, err)
		resp, err := cluster.GetNode("n3").GetClient().Get(ctx, &chordpb.GetRequest{Key: key})
		require.NoError(t, err)
		assert.True(t, resp.Found, key)
	}
}

func TestSmoke_ConcurrentPuts(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster := startRing(t, ctx, 61351, 3)
	names := []string{"n1", "n2", "n3"}

	const writes = 60
	var wg sync.WaitGroup
	errs := make(chan error, writes)
	for i := 0; i < writes; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("concurrent-%d", i)
			client := cluster.GetNode(names[i%len(names)]).GetClient()
			_, err := client.Put(ctx, &chordpb.PutRequest{Key: key, Value: []byte(key)})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	all, err := cluster.GetNode("n2").GetClient().ListAll(ctx, &chordpb.Empty{})
	require.NoError(t, err)
	assert.Len(t, all.Values, writes)
}
