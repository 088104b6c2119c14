package it

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	chordpb "github.com/aabbfive/ChordDHT/internal/api"
)

// DefaultBinary is where the tests expect the node binary.
const DefaultBinary = "./chordnode"

// Cluster represents a test cluster of nodes
type Cluster struct {
	nodes      []*Node
	logDir     string
	binaryPath string
	basePort   int
	mu         sync.Mutex
}

// Node represents a single node in the test cluster
type Node struct {
	Name         string
	Addr         string
	Port         int
	cmd          *exec.Cmd
	logFile      *os.File
	conn         *grpc.ClientConn
	client       chordpb.DHTClient
	healthClient healthpb.HealthClient
}

// NewCluster creates a new test cluster harness
func NewCluster(binaryPath string, basePort int) (*Cluster, error) {
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("binary not found at %s, build it first with 'go build -o chordnode ./cmd/chordnode'", binaryPath)
	}

	logDir := filepath.Join(".local", "it-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Cluster{
		nodes:      make([]*Node, 0),
		logDir:     logDir,
		binaryPath: binaryPath,
		basePort:   basePort,
	}, nil
}

// StartNode starts a node and, when join is set, joins it through the named
// node. It returns once the node reports SERVING.
func (c *Cluster) StartNode(ctx context.Context, name, join string) (*Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	port := c.basePort + len(c.nodes)
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	entries := []string{fmt.Sprintf("%s=%s", name, addr)}
	for _, n := range c.nodes {
		entries = append(entries, fmt.Sprintf("%s=%s", n.Name, n.Addr))
	}

	logPath := filepath.Join(c.logDir, fmt.Sprintf("%s.log", name))
	logFile, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	args := []string{
		"--name", name,
		"--listen", addr,
		"--directory", strings.Join(entries, ","),
		"--log-level", "debug",
	}
	if join != "" {
		args = append(args, "--join", join)
	}
	cmd := exec.CommandContext(ctx, c.binaryPath, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to start node %s: %w", name, err)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		cmd.Process.Kill()
		logFile.Close()
		return nil, fmt.Errorf("failed to dial node %s: %w", name, err)
	}

	node := &Node{
		Name:         name,
		Addr:         addr,
		Port:         port,
		cmd:          cmd,
		logFile:      logFile,
		conn:         conn,
		client:       chordpb.NewDHTClient(conn),
		healthClient: healthpb.NewHealthClient(conn),
	}
	c.nodes = append(c.nodes, node)

	if err := c.waitForReady(ctx, node, 10*time.Second); err != nil {
		node.Stop()
		return nil, fmt.Errorf("node %s failed to become ready: %w", name, err)
	}
	return node, nil
}

// waitForReady waits for a node to be ready by checking health endpoint
func (c *Cluster) waitForReady(ctx context.Context, node *Node, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout waiting for node %s to be ready", node.Name)
			}

			healthCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			resp, err := node.healthClient.Check(healthCtx, &healthpb.HealthCheckRequest{Service: "chord.DHT"})
			cancel()

			if err == nil && resp.Status == healthpb.HealthCheckResponse_SERVING {
				return nil
			}
		}
	}
}

// StartRing starts size nodes named n1..n<size>, each joining through n1.
// Nodes start one at a time so every join sees a quiescent ring.
func (c *Cluster) StartRing(ctx context.Context, size int) error {
	for i := 1; i <= size; i++ {
		name := fmt.Sprintf("n%d", i)
		join := ""
		if i > 1 {
			join = "n1"
		}
		if _, err := c.StartNode(ctx, name, join); err != nil {
			c.Stop()
			return err
		}
	}
	return nil
}

// Stop stops all nodes in the cluster
func (c *Cluster) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		node.Stop()
	}
	c.nodes = nil
}

// Stop kills a single node without leaving the ring.
func (n *Node) Stop() {
	if n.conn != nil {
		n.conn.Close()
	}
	if n.cmd != nil && n.cmd.Process != nil {
		n.cmd.Process.Kill()
		n.cmd.Wait()
	}
	if n.logFile != nil {
		n.logFile.Close()
	}
}

// GetClient returns the DHT client for a node
func (n *Node) GetClient() chordpb.DHTClient {
	return n.client
}

// GetNode returns a node by name
func (c *Cluster) GetNode(name string) *Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// LeaveNode interrupts a node, which leaves the ring before exiting, and
// waits for the process to end.
func (c *Cluster) LeaveNode(name string, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, node := range c.nodes {
		if node.Name != name {
			continue
		}
		if err := node.cmd.Process.Signal(os.Interrupt); err != nil {
			return fmt.Errorf("failed to interrupt node %s: %w", name, err)
		}

		done := make(chan error, 1)
		go func() { done <- node.cmd.Wait() }()
		select {
		case err := <-done:
			node.cmd = nil
			node.Stop()
			c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)
			if err != nil {
				return fmt.Errorf("node %s exited with error: %w", name, err)
			}
			return nil
		case <-time.After(timeout):
			return fmt.Errorf("node %s did not exit within %s", name, timeout)
		}
	}
	return fmt.Errorf("node %s not found", name)
}
