// Command chordnode runs one peer of a Chord ring and serves the chord.Peer
// and chord.DHT gRPC services.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aabbfive/ChordDHT/internal/config"
	"github.com/aabbfive/ChordDHT/internal/discovery"
	"github.com/aabbfive/ChordDHT/internal/node"
)

const (
	joinTimeout  = 30 * time.Second
	leaveTimeout = 10 * time.Second
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "chordnode: %v\n", err)
		os.Exit(2)
	}

	logger := node.NewLogger(cfg)

	var directory discovery.Directory = discovery.NewMemory()
	if len(cfg.Directory) > 0 {
		directory = discovery.NewStatic(cfg.DirectoryTable())
	}

	n, err := node.NewNode(cfg, directory, node.WithLogger(logger))
	if err != nil {
		logger.WithError(err).Fatal("Failed to create node")
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		logger.WithError(err).Fatalf("Failed to listen on %s", cfg.ListenAddr)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- n.Serve(lis)
	}()

	if cfg.Join != "" {
		ctx, cancel := context.WithTimeout(context.Background(), joinTimeout)
		err := n.Join(ctx, cfg.Join)
		cancel()
		if err != nil {
			logger.WithError(err).WithField("entry", cfg.Join).Error("Failed to join ring")
			n.Stop()
			os.Exit(1)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.WithField("signal", sig.String()).Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
		if err := n.Leave(ctx); err != nil {
			logger.WithError(err).Error("Failed to leave ring")
		}
		cancel()
		n.Stop()
	case err := <-serveErr:
		if err != nil {
			logger.WithError(err).Fatal("Node stopped")
		}
	}
}

// parseConfig loads the optional config file and overlays the flags that
// were set explicitly.
func parseConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("chordnode", flag.ContinueOnError)

	var (
		configPath  = fs.String("config", "", "path to a TOML config file")
		name        = fs.String("name", "", "node name; its hash is the ring key")
		listen      = fs.String("listen", "", "listen address, e.g. :50051")
		advertise   = fs.String("advertise", "", "address peers dial (default: listen address)")
		join        = fs.String("join", "", "name of a peer to join through")
		directory   = fs.String("directory", "", "name=addr list of known peers")
		bits        = fs.Int("bits", config.DefaultBits, "key width in bits")
		maxHops     = fs.Int("max-hops", 0, "routing hop ceiling (0 for automatic)")
		callTimeout = fs.Duration("call-timeout", config.DefaultCallTimeout, "per-call peer timeout")
		logLevel    = fs.String("log-level", config.DefaultLogLevel, "log level")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return nil, err
		}
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			cfg.Name = *name
		case "listen":
			cfg.ListenAddr = *listen
		case "advertise":
			cfg.AdvertiseAddr = *advertise
		case "join":
			cfg.Join = *join
		case "directory":
			entries, err := config.ParseDirectory(*directory)
			if err != nil {
				parseErr = err
				return
			}
			cfg.Directory = append(cfg.Directory, entries...)
		case "bits":
			cfg.Bits = *bits
		case "max-hops":
			cfg.MaxHops = *maxHops
		case "call-timeout":
			cfg.CallTimeout = *callTimeout
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
