package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/evaluator"
	"github.com/nao1215/passcheck/internal/history"
	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Analyze the strength of a password",
		Long: `Analyze evaluates a single password and reports its strength.

The report includes:
- Strength score (0-100) and qualitative level
- Character composition and entropy estimate
- Weak patterns (repeats, sequences, keyboard walks, leetspeak, words)
- Security checks (common list, breach list, basic requirements)
- Concrete recommendations

The password can be passed as an argument or piped on stdin. Prefer
stdin in scripts so the password stays out of shell history.

Examples:
  # Read the password from stdin
  echo 'MyS3cret!' | passcheck analyze

  # Pass the password as an argument
  passcheck analyze 'MyS3cret!'

  # JSON report written to a file
  passcheck analyze --json -o report.json 'MyS3cret!'

  # Save a masked summary under a label for trend tracking
  passcheck analyze --save --label work-laptop 'MyS3cret!'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("save", "s", false,
		"Save a masked summary to the history database")
	cmd.Flags().StringP("label", "l", history.DefaultLabel,
		"History label for --save (names the credential being tracked)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: passcheck.yaml in current or XDG config directory)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd) || cfg.Verbose)
	slog.SetDefault(logger)

	password, err := readPassword(cmd, args)
	if err != nil {
		return err
	}

	eval, err := newEvaluator(cfg)
	if err != nil {
		return err
	}

	result := eval.Evaluate(password)
	logger.Debug("analysis complete",
		"length", result.Length,
		"score", result.StrengthScore,
		"level", result.StrengthLevel.String(),
	)

	if err := outputReport(cfg, result); err != nil {
		return err
	}

	if cfg.HistoryEnabled {
		label, err := cmd.Flags().GetString("label")
		if err != nil {
			return err
		}
		return saveSummary(cmd, cfg, label, result, logger)
	}

	return nil
}

// buildAnalyzeConfig creates a Config from cobra command flags.
// The config file is applied first so flags win for overlapping settings.
func buildAnalyzeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg); err != nil {
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

	save, err := cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}
	if save {
		cfg.HistoryEnabled = true
	}

	return cfg, nil
}

// readPassword returns the password from the argument or, when no argument
// is given, the first line of stdin. Trailing CR from Windows-style input
// is stripped; everything else is taken verbatim because a password may
// legitimately start or end with a space.
func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		if args[0] == "" {
			return "", evaluator.ErrEmptyPassword
		}
		return args[0], nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read password from stdin: %w", err)
		}
		return "", errors.New("no password provided (pass it as an argument or on stdin)")
	}

	password := strings.TrimSuffix(scanner.Text(), "\r")
	if password == "" {
		return "", evaluator.ErrEmptyPassword
	}
	return password, nil
}

// outputReport outputs the analysis report in the requested format.
// Every writer masks the password, so no format leaks the cleartext.
func outputReport(cfg *config.Config, result *model.Report) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file with secure permissions (0600).
		// Even a masked report names the credential's weaknesses, so it
		// should only be readable by the owner.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output)
	}

	_, err := writer.Write(result)
	return err
}

// saveSummary stores a masked summary of the analysis in the history
// database so score trends can be tracked per label over time.
func saveSummary(cmd *cobra.Command, cfg *config.Config, label string, result *model.Report, logger *slog.Logger) error {
	db, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	id, err := db.Save(context.Background(), label, result)
	if err != nil {
		return fmt.Errorf("failed to save analysis summary: %w", err)
	}

	logger.Debug("analysis summary saved", "id", id, "label", label)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved masked summary (id %d, label %q)\n", id, label)
	return nil
}
