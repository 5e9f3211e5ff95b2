package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/history"
)

// Constants for strength direction between two stored analyses.
const (
	strengthDirectionImproved  = "improved"
	strengthDirectionWorsened  = "worsened"
	strengthDirectionUnchanged = "unchanged"
)

// NewHistoryCmd creates the history command.
// This command lists and compares analysis summaries stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show and compare stored analysis summaries",
		Long: `History lists the masked analysis summaries saved with 'passcheck
analyze --save' and compares them to track whether a credential's
strength improved over time.

Summaries are grouped by label, one label per tracked credential. The
database stores masked echoes only; no stored record can reveal an
analyzed password.

Comparison requires at least two saved analyses for the label and shows:
- The score, entropy, and length deltas between the two analyses
- Whether the credential improved, worsened, or stayed unchanged

Examples:
  # List saved analyses for the default label
  passcheck history

  # List saved analyses for a specific label
  passcheck history --label work-laptop

  # Compare the latest two analyses for a label
  passcheck history --compare --label work-laptop

  # Compare the latest analysis with a specific record by ID
  passcheck history --compare --with-id 5 --label work-laptop

  # Output comparison in JSON format
  passcheck history --compare --json

  # List all labels in the database
  passcheck history --list-labels`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("label", "l", history.DefaultLabel,
		"Label of the tracked credential")
	cmd.Flags().BoolP("list-labels", "L", false,
		"List all labels in the history database")
	cmd.Flags().BoolP("compare", "C", false,
		"Compare the two most recent analyses for the label")
	cmd.Flags().Int64P("with-id", "i", 0,
		"Compare the latest analysis with a specific record by ID (implies --compare)")
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: passcheck.yaml in current or XDG config directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildHistoryConfig(cmd)
	if err != nil {
		return err
	}

	label, err := cmd.Flags().GetString("label")
	if err != nil {
		return err
	}

	db, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	out := cmd.OutOrStdout()

	// Handle --list-labels flag
	listLabels, err := cmd.Flags().GetBool("list-labels")
	if err != nil {
		return err
	}
	if listLabels {
		return outputLabels(ctx, db, out)
	}

	compare, err := cmd.Flags().GetBool("compare")
	if err != nil {
		return err
	}
	withID, err := cmd.Flags().GetInt64("with-id")
	if err != nil {
		return err
	}
	if compare || withID > 0 {
		jsonOutput, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		markdownOutput, err := cmd.Flags().GetBool("markdown")
		if err != nil {
			return err
		}
		return runStrengthComparison(ctx, db, label, withID, jsonOutput, markdownOutput, out)
	}

	// Default action: list the saved analyses for the label
	return outputHistoryList(ctx, db, label, out)
}

// buildHistoryConfig creates a Config from cobra command flags.
// The config file can relocate the history database directory.
func buildHistoryConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// outputLabels lists all labels that have records in the database.
func outputLabels(ctx context.Context, db *history.DB, w io.Writer) error {
	labels, err := db.Labels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list labels: %w", err)
	}

	if len(labels) == 0 {
		fmt.Fprintln(w, "No saved analyses found in the database.")
		fmt.Fprintln(w, "\nUse 'passcheck analyze --save <password>' to save one.")
		return nil
	}

	fmt.Fprintf(w, "Labels (%d):\n\n", len(labels))
	for _, label := range labels {
		fmt.Fprintf(w, "  • %s\n", label)
	}
	fmt.Fprintln(w, "\nUse 'passcheck history --label <name>' to see the records for a label.")

	return nil
}

// outputHistoryList lists all saved analyses for a specific label.
func outputHistoryList(ctx context.Context, db *history.DB, label string, w io.Writer) error {
	records, err := db.History(ctx, label)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintf(w, "No saved analyses found for label %q\n", label)
		fmt.Fprintln(w, "\nUse 'passcheck analyze --save' to save one.")
		return nil
	}

	fmt.Fprintf(w, "Analysis history for %q (%d records):\n\n", label, len(records))
	fmt.Fprintf(w, "  %-6s  %-20s  %-20s  %-6s  %s\n", "ID", "Date", "Password", "Score", "Level")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 66))

	for _, record := range records {
		fmt.Fprintf(w, "  %-6d  %-20s  %-20s  %-6d  %s\n",
			record.ID,
			record.CreatedAt.Format("2006-01-02 15:04:05"),
			record.Masked,
			record.StrengthScore,
			record.StrengthLevel,
		)
	}

	fmt.Fprintln(w, "\nUse 'passcheck history --compare' to compare the latest two records.")
	fmt.Fprintln(w, "Use 'passcheck history --compare --with-id <id>' to compare with a specific record.")

	return nil
}

// runStrengthComparison performs the comparison between saved analyses.
func runStrengthComparison(ctx context.Context, db *history.DB, label string, withID int64, jsonOutput, markdownOutput bool, w io.Writer) error {
	records, err := db.History(ctx, label)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if len(records) == 0 {
		return fmt.Errorf("no saved analyses found for label %q", label)
	}
	if len(records) < 2 && withID == 0 {
		return fmt.Errorf("at least 2 saved analyses are required for comparison (found %d)", len(records))
	}

	// Latest record is always the current one
	current := records[0]

	var previous history.Record
	if withID > 0 {
		record, err := db.ByID(ctx, withID)
		if err != nil {
			return fmt.Errorf("failed to get analysis with ID %d: %w", withID, err)
		}
		if record == nil {
			return fmt.Errorf("analysis with ID %d not found", withID)
		}
		// Validate that the record belongs to the same label
		if record.Label != label {
			return fmt.Errorf("analysis ID %d belongs to label %q, not %q", withID, record.Label, label)
		}
		previous = *record
	} else {
		// Default: compare with the previous record
		previous = records[1]
	}

	comparison := compareRecords(label, previous, current)

	if jsonOutput {
		return outputComparisonJSON(comparison, w)
	}
	if markdownOutput {
		return outputComparisonMarkdown(comparison, w)
	}
	return outputComparisonText(comparison, w)
}

// StrengthComparison holds the result of comparing two saved analyses.
type StrengthComparison struct {
	// Label names the tracked credential.
	Label string `json:"label"`

	// Previous summarizes the older analysis.
	Previous AnalysisSummary `json:"previous"`

	// Current summarizes the newer analysis.
	Current AnalysisSummary `json:"current"`

	// Change describes the strength change between the two analyses.
	Change StrengthChange `json:"change"`
}

// AnalysisSummary is the comparison view of a stored record.
type AnalysisSummary struct {
	// ID is the record identifier in the database.
	ID int64 `json:"id"`

	// CreatedAt is when the analysis was stored.
	CreatedAt time.Time `json:"created_at"`

	// Masked is the masked echo of the analyzed password.
	Masked string `json:"masked"`

	// Length is the analyzed password's rune count.
	Length int `json:"length"`

	// Score is the strength score clamped to [0,100].
	Score int `json:"score"`

	// Level is the qualitative band label.
	Level string `json:"level"`

	// Entropy is the estimated bits of randomness.
	Entropy float64 `json:"entropy"`

	// CrackTime is the formatted crack time estimate.
	CrackTime string `json:"crack_time"`
}

// StrengthChange describes the strength change between two analyses.
type StrengthChange struct {
	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`

	// ScoreDelta is the change in strength score.
	ScoreDelta int `json:"score_delta"`

	// EntropyDelta is the change in estimated entropy bits.
	EntropyDelta float64 `json:"entropy_delta"`

	// LengthDelta is the change in password length.
	LengthDelta int `json:"length_delta"`
}

// compareRecords compares two saved analyses and generates a comparison
// result. A higher score is a better outcome, so a positive score delta
// reads as improvement.
func compareRecords(label string, previous, current history.Record) *StrengthComparison {
	result := &StrengthComparison{
		Label:    label,
		Previous: newAnalysisSummary(previous),
		Current:  newAnalysisSummary(current),
	}

	result.Change = StrengthChange{
		ScoreDelta:   current.StrengthScore - previous.StrengthScore,
		EntropyDelta: current.Entropy - previous.Entropy,
		LengthDelta:  current.Length - previous.Length,
	}

	// Direction follows the score; entropy breaks ties because two
	// different passwords can land on the same clamped score.
	switch {
	case result.Change.ScoreDelta > 0:
		result.Change.Direction = strengthDirectionImproved
	case result.Change.ScoreDelta < 0:
		result.Change.Direction = strengthDirectionWorsened
	case result.Change.EntropyDelta > 0:
		result.Change.Direction = strengthDirectionImproved
	case result.Change.EntropyDelta < 0:
		result.Change.Direction = strengthDirectionWorsened
	default:
		result.Change.Direction = strengthDirectionUnchanged
	}

	return result
}

// newAnalysisSummary builds the comparison view of a stored record.
func newAnalysisSummary(record history.Record) AnalysisSummary {
	return AnalysisSummary{
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
		Masked:    record.Masked,
		Length:    record.Length,
		Score:     record.StrengthScore,
		Level:     record.StrengthLevel,
		Entropy:   record.Entropy,
		CrackTime: record.CrackTime,
	}
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *StrengthComparison, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonMarkdown outputs the comparison result in Markdown format.
func outputComparisonMarkdown(result *StrengthComparison, w io.Writer) error {
	fmt.Fprintf(w, "# Strength Comparison: %s\n\n", result.Label)

	fmt.Fprintln(w, "## Summary")
	fmt.Fprintf(w, "\n**Strength Status:** %s\n\n", formatStrengthDirection(result.Change.Direction))

	fmt.Fprintln(w, "| Metric | Previous | Current | Change |")
	fmt.Fprintln(w, "|--------|----------|---------|--------|")
	fmt.Fprintf(w, "| Date | %s | %s | - |\n",
		result.Previous.CreatedAt.Format("2006-01-02 15:04"),
		result.Current.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "| Score | %d | %d | %s |\n",
		result.Previous.Score, result.Current.Score,
		formatDelta(result.Change.ScoreDelta))
	fmt.Fprintf(w, "| Entropy | %.1f | %.1f | %s |\n",
		result.Previous.Entropy, result.Current.Entropy,
		formatFloatDelta(result.Change.EntropyDelta))
	fmt.Fprintf(w, "| Length | %d | %d | %s |\n",
		result.Previous.Length, result.Current.Length,
		formatDelta(result.Change.LengthDelta))
	fmt.Fprintf(w, "| Level | %s | %s | - |\n",
		result.Previous.Level, result.Current.Level)
	fmt.Fprintf(w, "| Crack time | %s | %s | - |\n",
		result.Previous.CrackTime, result.Current.CrackTime)

	return nil
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(result *StrengthComparison, w io.Writer) error {
	fmt.Fprintf(w, "Strength Comparison: %q\n", result.Label)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "\nStrength Status: %s\n", formatStrengthDirection(result.Change.Direction))

	fmt.Fprintf(w, "\nPrevious: %s  %s  %d/100 (%s)\n",
		result.Previous.CreatedAt.Format("2006-01-02 15:04:05"),
		result.Previous.Masked, result.Previous.Score, result.Previous.Level)
	fmt.Fprintf(w, "Current:  %s  %s  %d/100 (%s)\n",
		result.Current.CreatedAt.Format("2006-01-02 15:04:05"),
		result.Current.Masked, result.Current.Score, result.Current.Level)

	fmt.Fprintln(w, "\nStrength Summary:")
	fmt.Fprintf(w, "  %-10s  %-10s  %-10s  %-10s\n", "Metric", "Previous", "Current", "Change")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 45))
	fmt.Fprintf(w, "  %-10s  %-10d  %-10d  %-10s\n", "Score",
		result.Previous.Score, result.Current.Score,
		formatDelta(result.Change.ScoreDelta))
	fmt.Fprintf(w, "  %-10s  %-10.1f  %-10.1f  %-10s\n", "Entropy",
		result.Previous.Entropy, result.Current.Entropy,
		formatFloatDelta(result.Change.EntropyDelta))
	fmt.Fprintf(w, "  %-10s  %-10d  %-10d  %-10s\n", "Length",
		result.Previous.Length, result.Current.Length,
		formatDelta(result.Change.LengthDelta))

	fmt.Fprintf(w, "\nLevel: %s -> %s\n", result.Previous.Level, result.Current.Level)
	fmt.Fprintf(w, "Crack time: %s -> %s\n", result.Previous.CrackTime, result.Current.CrackTime)

	return nil
}

// formatStrengthDirection formats the strength change direction for display.
func formatStrengthDirection(direction string) string {
	switch direction {
	case strengthDirectionImproved:
		return "IMPROVED (strength increased)"
	case strengthDirectionWorsened:
		return "WORSENED (strength decreased)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}

// formatFloatDelta formats a float delta with sign for display.
func formatFloatDelta(delta float64) string {
	if delta > 0 {
		return fmt.Sprintf("+%.1f", delta)
	}
	return fmt.Sprintf("%.1f", delta)
}
