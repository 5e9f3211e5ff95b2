package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/passcheck/internal/history"
)

// TestNewAnalyzeCmd tests the analyze command creation.
func TestNewAnalyzeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "analyze [password]" {
			t.Errorf("expected use 'analyze [password]', got %q", cmd.Use)
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

	t.Run("has json flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("json")
		if flag == nil {
			t.Fatal("expected json flag")
		}
		if flag.Shorthand != "j" {
			t.Errorf("expected shorthand 'j', got %q", flag.Shorthand)
		}
	})

	t.Run("has markdown flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("markdown")
		if flag == nil {
			t.Fatal("expected markdown flag")
		}
		if flag.Shorthand != "m" {
			t.Errorf("expected shorthand 'm', got %q", flag.Shorthand)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
	})

	t.Run("has save flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("save")
		if flag == nil {
			t.Fatal("expected save flag")
		}
		if flag.Shorthand != "s" {
			t.Errorf("expected shorthand 's', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has label flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("label")
		if flag == nil {
			t.Fatal("expected label flag")
		}
		if flag.Shorthand != "l" {
			t.Errorf("expected shorthand 'l', got %q", flag.Shorthand)
		}
		if flag.DefValue != history.DefaultLabel {
			t.Errorf("expected default %q, got %q", history.DefaultLabel, flag.DefValue)
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

// TestReadPassword tests password intake from the argument and stdin.
func TestReadPassword(t *testing.T) {
	t.Parallel()

	t.Run("from argument", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		password, err := readPassword(cmd, []string{"S3cret!pass1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if password != "S3cret!pass1" {
			t.Errorf("expected 'S3cret!pass1', got %q", password)
		}
	})

	t.Run("empty argument", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		if _, err := readPassword(cmd, []string{""}); err == nil {
			t.Fatal("expected error for empty password argument")
		}
	})

	t.Run("from stdin", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader("S3cret!pass1\n"))
		password, err := readPassword(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if password != "S3cret!pass1" {
			t.Errorf("expected 'S3cret!pass1', got %q", password)
		}
	})

	t.Run("strips trailing CR from stdin", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader("S3cret!pass1\r\n"))
		password, err := readPassword(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if password != "S3cret!pass1" {
			t.Errorf("expected CR to be stripped, got %q", password)
		}
	})

	t.Run("keeps leading and trailing spaces", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader(" spaced out \n"))
		password, err := readPassword(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if password != " spaced out " {
			t.Errorf("expected spaces preserved, got %q", password)
		}
	})

	t.Run("empty stdin line", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader("\n"))
		if _, err := readPassword(cmd, nil); err == nil {
			t.Fatal("expected error for empty stdin line")
		}
	})

	t.Run("no input at all", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader(""))
		if _, err := readPassword(cmd, nil); err == nil {
			t.Fatal("expected error when stdin is empty")
		}
	})
}

// TestBuildAnalyzeConfig tests config construction from analyze flags.
func TestBuildAnalyzeConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildAnalyzeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.JSONReport {
			t.Error("expected JSONReport to be false by default")
		}
		if cfg.MarkdownReport {
			t.Error("expected MarkdownReport to be false by default")
		}
		if cfg.HistoryEnabled {
			t.Error("expected HistoryEnabled to be false by default")
		}
		if cfg.ReportFile != "" {
			t.Errorf("expected empty report file, got %q", cfg.ReportFile)
		}
	})

	t.Run("save flag enables history", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags([]string{"--save"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildAnalyzeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.HistoryEnabled {
			t.Error("expected HistoryEnabled to be true with --save")
		}
	})

	t.Run("json flag", func(t *testing.T) {
		t.Parallel()
		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags([]string{"--json"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildAnalyzeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.JSONReport {
			t.Error("expected JSONReport to be true with --json")
		}
	})
}

// TestRunAnalyzeCmd tests analyze command execution end to end.
func TestRunAnalyzeCmd(t *testing.T) {
	t.Run("json report never contains the cleartext", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "report.json")

		cmd := NewAnalyzeCmd()
		cmd.SetArgs([]string{"--json", "-o", outputPath, "S3cret!pass1"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}

		if strings.Contains(string(data), "S3cret!pass1") {
			t.Error("report must never contain the cleartext password")
		}

		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if decoded["password"] != strings.Repeat("*", 12) {
			t.Errorf("expected masked password, got %v", decoded["password"])
		}
		if decoded["strength_score"] == nil {
			t.Error("expected strength_score in report")
		}
	})

	t.Run("markdown report", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "report.md")

		cmd := NewAnalyzeCmd()
		cmd.SetArgs([]string{"--markdown", "-o", outputPath, "S3cret!pass1"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), "# Password Strength Report") {
			t.Error("expected markdown title in report")
		}
	})

	t.Run("reads password from stdin", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "report.json")

		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader("S3cret!pass1\n"))
		cmd.SetArgs([]string{"--json", "-o", outputPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := os.Stat(outputPath); os.IsNotExist(err) {
			t.Error("expected report file to be created")
		}
	})

	t.Run("conflicting formats", func(t *testing.T) {
		cmd := NewAnalyzeCmd()
		cmd.SetArgs([]string{"--json", "--markdown", "S3cret!pass1"})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for conflicting formats")
		}
		if !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("expected configuration error, got %v", err)
		}
	})

	t.Run("empty password argument", func(t *testing.T) {
		cmd := NewAnalyzeCmd()
		cmd.SetArgs([]string{""})

		if err := cmd.Execute(); err == nil {
			t.Fatal("expected error for empty password")
		}
	})

	t.Run("save stores a masked summary", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "passcheck.yaml")
		content := "history:\n  dir: " + tmpDir + "\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		outputPath := filepath.Join(tmpDir, "report.txt")
		cmd := NewAnalyzeCmd()
		cmd.SetOut(new(strings.Builder))
		cmd.SetArgs([]string{
			"-c", configPath,
			"-o", outputPath,
			"--save", "--label", "test-credential",
			"S3cret!pass1",
		})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		db, err := history.Open(tmpDir, history.DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open history database: %v", err)
		}
		defer db.Close()

		records, err := db.History(context.Background(), "test-credential")
		if err != nil {
			t.Fatalf("failed to read history: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].Masked != strings.Repeat("*", 12) {
			t.Errorf("expected masked echo, got %q", records[0].Masked)
		}
		if records[0].StrengthScore <= 0 {
			t.Errorf("expected positive score, got %d", records[0].StrengthScore)
		}
	})
}
