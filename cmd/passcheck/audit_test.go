package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/passcheck/internal/pipeline"
)

// TestNewAuditCmd tests the audit command creation.
func TestNewAuditCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "audit [file]" {
			t.Errorf("expected use 'audit [file]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has batch flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("batch")
		if flag == nil {
			t.Fatal("expected batch flag")
		}
		if flag.Shorthand != "b" {
			t.Errorf("expected shorthand 'b', got %q", flag.Shorthand)
		}
		if flag.DefValue != "10" {
			t.Errorf("expected default '10', got %q", flag.DefValue)
		}
	})

	t.Run("has max flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("max")
		if flag == nil {
			t.Fatal("expected max flag")
		}
		if flag.Shorthand != "M" {
			t.Errorf("expected shorthand 'M', got %q", flag.Shorthand)
		}
		if flag.DefValue != "10000" {
			t.Errorf("expected default '10000', got %q", flag.DefValue)
		}
	})

	t.Run("has format flags", func(t *testing.T) {
		t.Parallel()
		for name, shorthand := range map[string]string{
			"json":     "j",
			"markdown": "m",
			"output":   "o",
		} {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				t.Fatalf("expected %s flag", name)
			}
			if flag.Shorthand != shorthand {
				t.Errorf("expected %s shorthand %q, got %q", name, shorthand, flag.Shorthand)
			}
		}
	})
}

// writeCandidateFile writes a newline-delimited password list for tests.
func writeCandidateFile(t *testing.T, passwords ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.txt")
	content := strings.Join(passwords, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write candidate file: %v", err)
	}
	return path
}

// TestRunAuditCmd tests the audit command execution.
func TestRunAuditCmd(t *testing.T) {
	t.Run("text report masks every candidate", func(t *testing.T) {
		listPath := writeCandidateFile(t, "123456", "Str0ng!Passw0rd#2024", "qwerty")
		outputPath := filepath.Join(t.TempDir(), "audit.txt")

		cmd := NewAuditCmd()
		cmd.SetArgs([]string{"-o", outputPath, listPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		output := string(data)

		if !strings.Contains(output, "Password Audit") {
			t.Error("expected report title")
		}
		if !strings.Contains(output, "Candidates:      3") {
			t.Errorf("expected candidate count, got:\n%s", output)
		}
		for _, cleartext := range []string{"123456", "Str0ng!Passw0rd#2024", "qwerty"} {
			if strings.Contains(output, cleartext) {
				t.Errorf("report must not contain cleartext %q", cleartext)
			}
		}
	})

	t.Run("json report has stats and masked results", func(t *testing.T) {
		listPath := writeCandidateFile(t, "123456", "Str0ng!Passw0rd#2024")
		outputPath := filepath.Join(t.TempDir(), "audit.json")

		cmd := NewAuditCmd()
		cmd.SetArgs([]string{"--json", "-o", outputPath, listPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}

		var decoded pipeline.AuditReport
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}

		if decoded.Stats.Total != 2 {
			t.Errorf("expected 2 candidates, got %d", decoded.Stats.Total)
		}
		if len(decoded.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(decoded.Results))
		}
		if decoded.Results[0].Masked != strings.Repeat("*", 6) {
			t.Errorf("expected first result masked, got %q", decoded.Results[0].Masked)
		}
		if decoded.Stats.CommonCount != 1 {
			t.Errorf("expected 1 common candidate, got %d", decoded.Stats.CommonCount)
		}
	})

	t.Run("markdown report", func(t *testing.T) {
		listPath := writeCandidateFile(t, "123456", "password")
		outputPath := filepath.Join(t.TempDir(), "audit.md")

		cmd := NewAuditCmd()
		cmd.SetArgs([]string{"--markdown", "-o", outputPath, listPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		output := string(data)

		if !strings.Contains(output, "# Password Audit") {
			t.Error("expected markdown title")
		}
		if !strings.Contains(output, "## Level Distribution") {
			t.Error("expected level distribution section")
		}
		if !strings.Contains(output, "## Results") {
			t.Error("expected results section")
		}
	})

	t.Run("reads candidates from stdin", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "audit.txt")

		cmd := NewAuditCmd()
		cmd.SetIn(strings.NewReader("123456\nqwerty\n"))
		cmd.SetArgs([]string{"-o", outputPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), "Candidates:      2") {
			t.Error("expected 2 candidates from stdin")
		}
	})

	t.Run("dash argument reads stdin", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "audit.txt")

		cmd := NewAuditCmd()
		cmd.SetIn(strings.NewReader("123456\n"))
		cmd.SetArgs([]string{"-o", outputPath, "-"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("max flag rejects oversized lists", func(t *testing.T) {
		listPath := writeCandidateFile(t, "one1!Aa", "two2!Bb", "three3!Cc")

		cmd := NewAuditCmd()
		cmd.SetArgs([]string{"--max", "2", listPath})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for oversized candidate list")
		}
		if !strings.Contains(err.Error(), "maximum candidate count") {
			t.Errorf("expected candidate count error, got %v", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		cmd := NewAuditCmd()
		cmd.SetIn(strings.NewReader("\n# only a comment\n"))
		cmd.SetArgs([]string{})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for empty input")
		}
		if !strings.Contains(err.Error(), "no candidates") {
			t.Errorf("expected 'no candidates' error, got %v", err)
		}
	})

	t.Run("missing list file", func(t *testing.T) {
		cmd := NewAuditCmd()
		cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.txt")})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !strings.Contains(err.Error(), "failed to open password list") {
			t.Errorf("expected open error, got %v", err)
		}
	})

	t.Run("conflicting formats", func(t *testing.T) {
		listPath := writeCandidateFile(t, "123456")

		cmd := NewAuditCmd()
		cmd.SetArgs([]string{"--json", "--markdown", listPath})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for conflicting formats")
		}
		if !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("expected configuration error, got %v", err)
		}
	})
}

// newTestAuditReport builds a small audit report for writer tests.
func newTestAuditReport() *pipeline.AuditReport {
	return &pipeline.AuditReport{
		Results: []pipeline.Result{
			{Masked: "******", Length: 6, Score: 1, Level: "Very Weak", Entropy: 19.9, IsCommon: true},
			{Masked: "***************", Length: 15, Score: 100, Level: "Very Strong", Entropy: 98.3, RequirementsMet: true},
		},
		Stats: pipeline.Stats{
			Total:                2,
			AverageScore:         50.5,
			AverageEntropy:       59.1,
			LevelCounts:          map[string]int{"Very Weak": 1, "Very Strong": 1},
			CommonCount:          1,
			PwnedCount:           1,
			RequirementsMetCount: 1,
			WeakestMasked:        "******",
			WeakestScore:         1,
			StrongestMasked:      "***************",
			StrongestScore:       100,
		},
	}
}

// TestWriteAuditText tests the human-readable audit rendering.
func TestWriteAuditText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeAuditText(&buf, newTestAuditReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := buf.String()

	expectedStrings := []string{
		"Password Audit",
		"Candidates:      2",
		"Average score:   50.5/100",
		"Average entropy: 59.1 bits",
		"Very Weak     1",
		"Very Strong   1",
		"On common list:    1",
		"Breach check hits: 1",
		"Weakest:   ****** (1/100)",
		"Strongest: *************** (100/100)",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("output missing expected string: %q", expected)
		}
	}
}

// TestWriteAuditMarkdown tests the Markdown audit rendering.
func TestWriteAuditMarkdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeAuditMarkdown(&buf, newTestAuditReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := buf.String()

	expectedStrings := []string{
		"# Password Audit",
		"| Candidates | 2 |",
		"| Average score | 50.5/100 |",
		"## Level Distribution",
		"| Very Weak | 1 |",
		"## Results",
		"| 1 | `******` | 6 | 1 | Very Weak | 19.9 |",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("output missing expected string: %q", expected)
		}
	}
}
