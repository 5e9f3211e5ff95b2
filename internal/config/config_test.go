package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected
// default values. This test ensures that defaults are documented through
// tests and that changes to defaults are intentional.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default ServerAddr is :5000", func(t *testing.T) {
		t.Parallel()
		if cfg.ServerAddr != ":5000" {
			t.Errorf("expected ServerAddr to be ':5000', got '%s'", cfg.ServerAddr)
		}
	})

	t.Run("default HistoryEnabled is false", func(t *testing.T) {
		t.Parallel()
		if cfg.HistoryEnabled {
			t.Error("expected HistoryEnabled to be false")
		}
	})

	t.Run("default HistoryDir is under the XDG data directory", func(t *testing.T) {
		t.Parallel()
		if !strings.HasSuffix(cfg.HistoryDir, AppName) {
			t.Errorf("expected HistoryDir to end with %q, got '%s'", AppName, cfg.HistoryDir)
		}
	})

	t.Run("default GeneratorLength is 16", func(t *testing.T) {
		t.Parallel()
		if cfg.GeneratorLength != 16 {
			t.Errorf("expected GeneratorLength to be 16, got %d", cfg.GeneratorLength)
		}
	})

	t.Run("default BatchSize is 10", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 10 {
			t.Errorf("expected BatchSize to be 10, got %d", cfg.BatchSize)
		}
	})

	t.Run("default Verbose is false", func(t *testing.T) {
		t.Parallel()
		if cfg.Verbose {
			t.Error("expected Verbose to be false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty server address returns ErrInvalidServerAddr", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ServerAddr = ""
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidServerAddr) {
			t.Errorf("expected ErrInvalidServerAddr, got %v", err)
		}
	})

	t.Run("address without port returns ErrInvalidServerAddr", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ServerAddr = "localhost"
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidServerAddr) {
			t.Errorf("expected ErrInvalidServerAddr, got %v", err)
		}
	})

	t.Run("generator length below minimum returns ErrInvalidGeneratorLength", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.GeneratorLength = 3
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidGeneratorLength) {
			t.Errorf("expected ErrInvalidGeneratorLength, got %v", err)
		}
	})

	t.Run("generator length zero means default and is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.GeneratorLength = 0
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("zero batch size returns ErrInvalidBatchSize", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.BatchSize = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidBatchSize) {
			t.Errorf("expected ErrInvalidBatchSize, got %v", err)
		}
	})

	t.Run("json and markdown together return ErrConflictingReportFormats", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("history without directory returns ErrMissingHistoryDir", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.HistoryEnabled = true
		cfg.HistoryDir = ""
		if err := cfg.Validate(); !errors.Is(err, ErrMissingHistoryDir) {
			t.Errorf("expected ErrMissingHistoryDir, got %v", err)
		}
	})
}

// TestXDGDirs tests that the XDG helpers place passcheck in its own
// subdirectory.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if base := filepath.Base(XDGDataDir()); base != AppName {
		t.Errorf("XDGDataDir() = %q, expected to end with %q", XDGDataDir(), AppName)
	}
	if base := filepath.Base(XDGConfigDir()); base != AppName {
		t.Errorf("XDGConfigDir() = %q, expected to end with %q", XDGConfigDir(), AppName)
	}
}

// TestFileApply tests that Apply only overrides what the file sets.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file changes nothing", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		defaults := NewConfig()
		if *cfg != *defaults {
			t.Errorf("expected config unchanged, got %+v", cfg)
		}
	})

	t.Run("set fields override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{
			Server:    ServerSection{Addr: ":8080"},
			History:   HistorySection{Enabled: true, Dir: "/tmp/passcheck"},
			Generator: GeneratorSection{Length: 24},
			Wordlists: WordlistsSection{
				CommonPasswords: "/etc/passcheck/common.txt",
				DictionaryWords: "/etc/passcheck/words.txt",
			},
			Verbose: true,
		}
		f.Apply(cfg)

		if cfg.ServerAddr != ":8080" {
			t.Errorf("ServerAddr = %q, expected :8080", cfg.ServerAddr)
		}
		if !cfg.HistoryEnabled {
			t.Error("expected HistoryEnabled to be true")
		}
		if cfg.HistoryDir != "/tmp/passcheck" {
			t.Errorf("HistoryDir = %q, expected /tmp/passcheck", cfg.HistoryDir)
		}
		if cfg.GeneratorLength != 24 {
			t.Errorf("GeneratorLength = %d, expected 24", cfg.GeneratorLength)
		}
		if cfg.CommonPasswordFile != "/etc/passcheck/common.txt" {
			t.Errorf("CommonPasswordFile = %q, expected /etc/passcheck/common.txt", cfg.CommonPasswordFile)
		}
		if cfg.DictionaryFile != "/etc/passcheck/words.txt" {
			t.Errorf("DictionaryFile = %q, expected /etc/passcheck/words.txt", cfg.DictionaryFile)
		}
		if !cfg.Verbose {
			t.Error("expected Verbose to be true")
		}
	})

	t.Run("false booleans never override", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Verbose = true
		cfg.HistoryEnabled = true

		(&File{}).Apply(cfg)

		if !cfg.Verbose || !cfg.HistoryEnabled {
			t.Error("expected file with absent booleans to leave flags set")
		}
	})
}
