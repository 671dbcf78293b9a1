package mcp

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "localhost:50051" {
		t.Fatalf("addr = %q, want localhost:50051", cfg.Addr)
	}
	if cfg.DialTimeout != 5*time.Second {
		t.Fatalf("dial timeout = %v, want 5s", cfg.DialTimeout)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("COSMOS_MCP_MOVIE_ADDR", "movie:9000")
	t.Setenv("COSMOS_MCP_DIAL_TIMEOUT", "1s")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", "flag:9001"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "flag:9001" {
		t.Fatalf("addr = %q, want flag:9001", cfg.Addr)
	}
	if cfg.DialTimeout != time.Second {
		t.Fatalf("dial timeout = %v, want 1s", cfg.DialTimeout)
	}
}

func TestParseConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("COSMOS_MCP_DIAL_TIMEOUT", "soon")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}
