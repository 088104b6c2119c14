package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBits        = 32
	DefaultCallTimeout = 2 * time.Second
	DefaultLogLevel    = "info"
)

// Entry binds a node name to a dialable address.
type Entry struct {
	Name string `toml:"name"`
	Addr string `toml:"addr"`
}

// Config holds the node configuration.
type Config struct {
	Name       string `toml:"name"`
	ListenAddr string `toml:"listen"`
	// AdvertiseAddr is the address other peers dial. Defaults to ListenAddr.
	AdvertiseAddr string `toml:"advertise"`
	// Join names the peer to join through. Empty starts a new ring.
	Join string `toml:"join"`
	Bits int    `toml:"bits"`
	// MaxHops of zero picks min(2^Bits, 4096).
	MaxHops     int           `toml:"max_hops"`
	CallTimeout time.Duration `toml:"call_timeout"`
	LogLevel    string        `toml:"log_level"`
	Directory   []Entry       `toml:"directory"`
}

// Default returns a configuration with defaults filled in.
func Default() *Config {
	return &Config{
		Bits:        DefaultBits,
		CallTimeout: DefaultCallTimeout,
		LogLevel:    DefaultLogLevel,
	}
}

// LoadFile reads a TOML file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
	}
	return cfg, nil
}

// ParseDirectory parses a comma-separated list of entries in the format:
// "name1=addr1,name2=addr2,name3=addr3"
func ParseDirectory(s string) ([]Entry, error) {
	if s == "" {
		return []Entry{}, nil
	}

	parts := strings.Split(s, ",")
	entries := make([]Entry, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid directory entry: %s (expected name=addr)", part)
		}

		name := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if name == "" || addr == "" {
			return nil, fmt.Errorf("entry name and address cannot be empty: %s", part)
		}

		entries = append(entries, Entry{Name: name, Addr: addr})
	}

	return entries, nil
}

// Advertise returns the address peers should dial: the advertise address if
// set, else the node's own directory entry, else the listen address with an
// empty or wildcard host replaced by the loopback address.
func (c *Config) Advertise() string {
	if c.AdvertiseAddr != "" {
		return c.AdvertiseAddr
	}
	if addr, ok := c.DirectoryTable()[c.Name]; ok && c.Name != "" {
		return addr
	}

	host, port, err := net.SplitHostPort(c.ListenAddr)
	if err != nil {
		return c.ListenAddr
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		return net.JoinHostPort("127.0.0.1", port)
	}
	return c.ListenAddr
}

// DirectoryTable returns the directory entries as a map. Later entries win.
func (c *Config) DirectoryTable() map[string]string {
	table := make(map[string]string, len(c.Directory))
	for _, e := range c.Directory {
		table[e.Name] = e.Addr
	}
	return table
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.LogLevel)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if c.Bits < 1 || c.Bits > 64 {
		errs = append(errs, fmt.Errorf("bits must be between 1 and 64, got %d", c.Bits))
	}
	if c.MaxHops < 0 {
		errs = append(errs, fmt.Errorf("max hops cannot be negative, got %d", c.MaxHops))
	}
	if c.CallTimeout < 0 {
		errs = append(errs, fmt.Errorf("call timeout cannot be negative, got %s", c.CallTimeout))
	}
	if c.Join != "" && c.Join == c.Name {
		errs = append(errs, errors.New("node cannot join through itself"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
