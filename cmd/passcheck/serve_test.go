package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/passcheck/internal/config"
)

// TestNewServeCmd tests the serve command creation.
func TestNewServeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewServeCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "serve" {
			t.Errorf("expected use 'serve', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has addr flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("addr")
		if flag == nil {
			t.Fatal("expected addr flag")
		}
		if flag.Shorthand != "a" {
			t.Errorf("expected shorthand 'a', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultServerAddr {
			t.Errorf("expected default %q, got %q", config.DefaultServerAddr, flag.DefValue)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})
}

// TestBuildServeConfig tests config construction from serve flags.
func TestBuildServeConfig(t *testing.T) {
	t.Parallel()

	t.Run("default address", func(t *testing.T) {
		t.Parallel()
		cmd := NewServeCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildServeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ServerAddr != config.DefaultServerAddr {
			t.Errorf("expected default addr %q, got %q", config.DefaultServerAddr, cfg.ServerAddr)
		}
	})

	t.Run("addr flag overrides config file", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "passcheck.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  addr: \":7000\"\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewServeCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath, "--addr", ":8080"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildServeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ServerAddr != ":8080" {
			t.Errorf("expected flag to win with ':8080', got %q", cfg.ServerAddr)
		}
	})

	t.Run("config file sets address when flag is absent", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "passcheck.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  addr: \":7000\"\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewServeCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildServeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ServerAddr != ":7000" {
			t.Errorf("expected config file addr ':7000', got %q", cfg.ServerAddr)
		}
	})
}

// TestBrowserURL tests listen address to URL conversion.
func TestBrowserURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		addr string
		want string
	}{
		{name: "port only", addr: ":5000", want: "http://localhost:5000"},
		{name: "host and port", addr: "127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{name: "hostname and port", addr: "example.com:80", want: "http://example.com:80"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := browserURL(tt.addr); got != tt.want {
				t.Errorf("browserURL(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}
