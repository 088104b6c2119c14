package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parseConfig([]string{
		"--name", "n2",
		"--listen", ":50052",
		"--join", "n1",
		"--directory", "n1=127.0.0.1:50051,n2=127.0.0.1:50052",
		"--bits", "16",
	})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.Name != "n2" || cfg.ListenAddr != ":50052" || cfg.Join != "n1" {
		t.Errorf("identity = %+v", cfg)
	}
	if cfg.Bits != 16 {
		t.Errorf("Bits = %d, want 16", cfg.Bits)
	}
	if cfg.CallTimeout != 2*time.Second {
		t.Errorf("CallTimeout = %s, want default", cfg.CallTimeout)
	}
	if len(cfg.Directory) != 2 {
		t.Errorf("Directory = %v, want 2 entries", cfg.Directory)
	}
}

func TestParseConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.toml")
	content := "name = \"n1\"\nlisten = \":50051\"\nbits = 20\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseConfig([]string{"--config", path, "--listen", ":60051"})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.ListenAddr != ":60051" {
		t.Errorf("ListenAddr = %q, want flag value", cfg.ListenAddr)
	}
	if cfg.Bits != 20 {
		t.Errorf("Bits = %d, want file value 20", cfg.Bits)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want file value", cfg.LogLevel)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	for name, args := range map[string][]string{
		"missing name":      {"--listen", ":50051"},
		"bad directory":     {"--name", "n1", "--listen", ":50051", "--directory", "n2"},
		"bits out of range": {"--name", "n1", "--listen", ":50051", "--bits", "65"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := parseConfig(args); err == nil {
				t.Error("parseConfig() expected error")
			}
		})
	}
}
