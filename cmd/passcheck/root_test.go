package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/passcheck/internal/config"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "passcheck" {
			t.Errorf("expected use 'passcheck', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		subcommands := cmd.Commands()
		if len(subcommands) == 0 {
			t.Error("expected subcommands")
		}

		wantUses := []string{
			"analyze [password]",
			"generate",
			"audit [file]",
			"serve",
			"history",
			"init",
			"version",
		}
		for _, want := range wantUses {
			found := false
			for _, sub := range subcommands {
				if sub.Use == want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected subcommand with use %q", want)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestSetupLogger tests the logger setup helper.
func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose logger", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(true)
		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
	})

	t.Run("quiet logger", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(false)
		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
	})
}

// TestGetVerboseFlag tests verbose flag retrieval from commands.
func TestGetVerboseFlag(t *testing.T) {
	t.Parallel()

	t.Run("root command with verbose set", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()
		if err := cmd.PersistentFlags().Set("verbose", "true"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}
		if !getVerboseFlag(cmd) {
			t.Error("expected verbose to be true")
		}
	})

	t.Run("root command default", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()
		if getVerboseFlag(cmd) {
			t.Error("expected verbose to be false by default")
		}
	})
}

// TestApplyConfigFile tests config file resolution and merging.
func TestApplyConfigFile(t *testing.T) {
	t.Run("explicit path that does not exist", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.ConfigFilePath = filepath.Join(t.TempDir(), "missing.yaml")

		err := applyConfigFile(cfg)
		if err == nil {
			t.Fatal("expected error for missing explicit config file")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected 'not found' error, got %v", err)
		}
	})

	t.Run("explicit path applies settings", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "passcheck.yaml")
		content := "server:\n  addr: \":9000\"\ngenerator:\n  length: 24\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg := config.NewConfig()
		cfg.ConfigFilePath = path
		if err := applyConfigFile(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.ServerAddr != ":9000" {
			t.Errorf("expected server addr ':9000', got %q", cfg.ServerAddr)
		}
		if cfg.GeneratorLength != 24 {
			t.Errorf("expected generator length 24, got %d", cfg.GeneratorLength)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "passcheck.yaml")
		if err := os.WriteFile(path, []byte("server: [broken"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg := config.NewConfig()
		cfg.ConfigFilePath = path
		if err := applyConfigFile(cfg); err == nil {
			t.Fatal("expected error for invalid YAML")
		}
	})
}

// TestNewEvaluatorFromConfig tests engine construction with custom wordlists.
func TestNewEvaluatorFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("default configuration", func(t *testing.T) {
		t.Parallel()
		eval, err := newEvaluator(config.NewConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if eval == nil {
			t.Fatal("expected non-nil evaluator")
		}
	})

	t.Run("custom common password list", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "common.txt")
		if err := os.WriteFile(path, []byte("hunter2\n# comment\n\n"), 0600); err != nil {
			t.Fatalf("failed to write wordlist: %v", err)
		}

		cfg := config.NewConfig()
		cfg.CommonPasswordFile = path
		eval, err := newEvaluator(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result := eval.Evaluate("hunter2")
		if !result.SecurityChecks.IsCommon {
			t.Error("expected custom common password to be flagged")
		}
	})

	t.Run("missing wordlist file", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.DictionaryFile = filepath.Join(t.TempDir(), "missing.txt")
		if _, err := newEvaluator(cfg); err == nil {
			t.Fatal("expected error for missing wordlist file")
		}
	})
}
