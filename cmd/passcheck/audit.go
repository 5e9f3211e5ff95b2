package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/pipeline"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [file]",
		Short: "Audit a password list for weak entries",
		Long: `Audit evaluates every candidate in a newline-delimited password list
and reports aggregate statistics alongside per-candidate scores.

Candidates are evaluated concurrently and echoed masked; the cleartext
never appears in the output or the logs. Blank lines and lines starting
with '#' are skipped. Pass '-' (or no argument) to read from stdin.

Examples:
  # Audit a leaked-candidate file
  passcheck audit candidates.txt

  # Audit stdin
  cat candidates.txt | passcheck audit

  # JSON audit report written to a file
  passcheck audit --json -o audit.json candidates.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAuditCmd,
	}

	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent evaluations")
	cmd.Flags().IntP("max", "M", pipeline.DefaultMaxCandidates,
		"Maximum number of candidates to read from the list")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: passcheck.yaml in current or XDG config directory)")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAuditConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd) || cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling so an interrupted audit stops
	// cleanly instead of leaving evaluations mid-flight.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	maxCandidates, err := cmd.Flags().GetInt("max")
	if err != nil {
		return err
	}

	passwords, err := readCandidates(cmd, args, maxCandidates)
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		return errors.New("no candidates found in input")
	}

	eval, err := newEvaluator(cfg)
	if err != nil {
		return err
	}

	processor := pipeline.NewBatchProcessor(eval,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	auditReport, err := processor.Process(ctx, passwords)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	return outputAuditReport(cfg, auditReport)
}

// buildAuditConfig creates a Config from cobra command flags.
func buildAuditConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// readCandidates opens the password list named by args and reads at most
// maxCandidates entries. An empty or "-" argument selects stdin.
func readCandidates(cmd *cobra.Command, args []string, maxCandidates int) ([]string, error) {
	var input io.Reader = cmd.InOrStdin()

	if len(args) == 1 && args[0] != "" && args[0] != "-" {
		f, err := os.Open(args[0]) //nolint:gosec // User-provided list path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open password list: %w", err)
		}
		defer f.Close()
		input = f
	}

	return pipeline.ReadPasswordList(input, maxCandidates)
}

// outputAuditReport outputs the audit report in the requested format.
func outputAuditReport(cfg *config.Config, auditReport *pipeline.AuditReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (full report with per-candidate results and stats)
	if cfg.JSONReport {
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(auditReport)
	}

	// Markdown output
	if cfg.MarkdownReport {
		return writeAuditMarkdown(output, auditReport)
	}

	// Human-readable report (default)
	return writeAuditText(output, auditReport)
}

// auditLevels is the display order for level distribution tables.
var auditLevels = []model.Level{
	model.LevelVeryWeak,
	model.LevelWeak,
	model.LevelModerate,
	model.LevelStrong,
	model.LevelVeryStrong,
}

// writeAuditText renders the audit report as an aligned text table.
func writeAuditText(w io.Writer, auditReport *pipeline.AuditReport) error {
	stats := auditReport.Stats

	fmt.Fprintf(w, "Password Audit\n")
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", 60))

	fmt.Fprintf(w, "Candidates:      %d\n", stats.Total)
	fmt.Fprintf(w, "Average score:   %.1f/100\n", stats.AverageScore)
	fmt.Fprintf(w, "Average entropy: %.1f bits\n\n", stats.AverageEntropy)

	fmt.Fprintf(w, "Level distribution:\n")
	for _, level := range auditLevels {
		fmt.Fprintf(w, "  %-13s %d\n", level.String(), stats.LevelCounts[level.String()])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Security:\n")
	fmt.Fprintf(w, "  On common list:    %d\n", stats.CommonCount)
	fmt.Fprintf(w, "  Breach check hits: %d\n", stats.PwnedCount)
	fmt.Fprintf(w, "  Requirements met:  %d\n\n", stats.RequirementsMetCount)

	fmt.Fprintf(w, "Weakest:   %s (%d/100)\n", stats.WeakestMasked, stats.WeakestScore)
	fmt.Fprintf(w, "Strongest: %s (%d/100)\n\n", stats.StrongestMasked, stats.StrongestScore)

	fmt.Fprintf(w, "Results:\n")
	fmt.Fprintf(w, "  %-5s %-20s %-6s %-6s %-12s %s\n",
		"#", "Password", "Len", "Score", "Level", "Entropy")
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 60))
	for i, result := range auditReport.Results {
		fmt.Fprintf(w, "  %-5d %-20s %-6d %-6d %-12s %.1f\n",
			i+1, result.Masked, result.Length, result.Score, result.Level, result.Entropy)
	}

	return nil
}

// writeAuditMarkdown renders the audit report as a Markdown document.
func writeAuditMarkdown(w io.Writer, auditReport *pipeline.AuditReport) error {
	stats := auditReport.Stats

	fmt.Fprintf(w, "# Password Audit\n\n")

	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Candidates | %d |\n", stats.Total)
	fmt.Fprintf(w, "| Average score | %.1f/100 |\n", stats.AverageScore)
	fmt.Fprintf(w, "| Average entropy | %.1f bits |\n", stats.AverageEntropy)
	fmt.Fprintf(w, "| On common list | %d |\n", stats.CommonCount)
	fmt.Fprintf(w, "| Breach check hits | %d |\n", stats.PwnedCount)
	fmt.Fprintf(w, "| Requirements met | %d |\n", stats.RequirementsMetCount)
	fmt.Fprintf(w, "| Weakest | `%s` (%d/100) |\n", stats.WeakestMasked, stats.WeakestScore)
	fmt.Fprintf(w, "| Strongest | `%s` (%d/100) |\n\n", stats.StrongestMasked, stats.StrongestScore)

	fmt.Fprintf(w, "## Level Distribution\n\n")
	fmt.Fprintf(w, "| Level | Count |\n")
	fmt.Fprintf(w, "|-------|-------|\n")
	for _, level := range auditLevels {
		fmt.Fprintf(w, "| %s | %d |\n", level.String(), stats.LevelCounts[level.String()])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Results\n\n")
	fmt.Fprintf(w, "| # | Password | Length | Score | Level | Entropy |\n")
	fmt.Fprintf(w, "|---|----------|--------|-------|-------|--------|\n")
	for i, result := range auditReport.Results {
		fmt.Fprintf(w, "| %d | `%s` | %d | %d | %s | %.1f |\n",
			i+1, result.Masked, result.Length, result.Score, result.Level, result.Entropy)
	}

	return nil
}
