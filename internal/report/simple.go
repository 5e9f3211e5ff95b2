package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/passcheck/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and indicator-prefixed check results.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// patternCategory describes one group of pattern findings for display.
type patternCategory struct {
	// name is the lowercase category name, title-cased for output.
	name string

	// description explains the category in verbose mode.
	description string

	// indicator marks penalized ("!") versus advisory ("i") categories.
	indicator string

	// items extracts the finding entries from the report.
	items func(f model.PatternFindings) []string
}

// patternCategories lists the finding groups in display order.
var patternCategories = []patternCategory{
	{
		name:        "repeated characters",
		description: "Characters repeated in adjacent positions shrink the search space.",
		indicator:   "!",
		items:       func(f model.PatternFindings) []string { return f.RepeatedChars },
	},
	{
		name:        "sequential patterns",
		description: "Ascending runs such as abc or 123 are tried early by crackers.",
		indicator:   "!",
		items:       func(f model.PatternFindings) []string { return f.Sequential },
	},
	{
		name:        "keyboard patterns",
		description: "Keys typed in row order are a staple of cracking wordlists.",
		indicator:   "!",
		items:       func(f model.PatternFindings) []string { return f.KeyboardPatterns },
	},
	{
		name:        "common substitutions",
		description: "Leetspeak substitutions are reversed automatically by cracking tools.",
		indicator:   "i",
		items:       func(f model.PatternFindings) []string { return f.CommonSubstitutions },
	},
	{
		name:        "dictionary words",
		description: "Embedded dictionary words make the password guessable.",
		indicator:   "i",
		items:       func(f model.PatternFindings) []string { return f.DictionaryWords },
	},
}

// Write outputs the full report in human-readable format.
// The password appears only in masked form.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	// Header
	w.writeHeader(&sb, model.Mask(report.Password), report.Length)

	// Strength
	w.writeStrength(&sb, report.StrengthScore, report.StrengthLevel, report.Entropy, report.CrackTime)

	// Character Composition
	w.writeComposition(&sb, report.CharacterAnalysis)

	// Pattern Findings
	w.writeFindings(&sb, report.PatternAnalysis)

	// Security Checks
	w.writeSecurity(&sb, report.SecurityChecks)

	// Recommendations
	w.writeRecommendations(&sb, report.Recommendations)

	// Footer
	w.writeFooter(&sb)

	// Write to output
	return w.output.Write([]byte(sb.String()))
}

// WriteSummary outputs the condensed report in human-readable format.
// Finding lists collapse to per-category counts.
func (w *SimpleWriter) WriteSummary(summary *model.Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary.Password, summary.Length)
	w.writeStrength(&sb, summary.StrengthScore, summary.StrengthLevel, summary.Entropy, summary.CrackTime)
	w.writeFindingCounts(&sb, summary)
	w.writeSummaryChecks(&sb, summary)
	w.writeRecommendations(&sb, summary.Recommendations)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with the masked password.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, masked string, length int) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                           PASSCHECK REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Password: %s\n", masked))
	sb.WriteString(fmt.Sprintf("Length:   %d characters\n", length))

	sb.WriteString("\n")
}

// writeStrength writes the score, level, entropy, and crack time section.
func (w *SimpleWriter) writeStrength(sb *strings.Builder, score int, level model.Level, entropy float64, crackTime string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("STRENGTH\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Score:      %d/100\n", score))
	sb.WriteString(fmt.Sprintf("  Level:      %s\n", level))
	sb.WriteString(fmt.Sprintf("  Entropy:    %.2f bits\n", entropy))
	sb.WriteString(fmt.Sprintf("  Crack Time: %s\n", crackTime))
	sb.WriteString("\n")
}

// writeComposition writes the per-class character counts.
func (w *SimpleWriter) writeComposition(sb *strings.Builder, profile model.CharacterProfile) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CHARACTER COMPOSITION\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Lowercase: %d\n", profile.Lowercase))
	sb.WriteString(fmt.Sprintf("  Uppercase: %d\n", profile.Uppercase))
	sb.WriteString(fmt.Sprintf("  Digits:    %d\n", profile.Digits))
	sb.WriteString(fmt.Sprintf("  Special:   %d\n", profile.Special))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  Unique:    %d distinct characters\n", profile.UniqueChars))
	sb.WriteString("\n")
}

// writeFindings writes all pattern findings grouped by category.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, findings model.PatternFindings) {
	if findings.Total() == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PATTERN FINDINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if findings.Total() == 0 {
		sb.WriteString("  No weak patterns detected\n\n")
		return
	}

	titler := cases.Title(language.English)
	for _, category := range patternCategories {
		items := category.items(findings)
		if len(items) == 0 && !w.showEmpty {
			continue
		}

		w.writeCategory(sb, titler.String(category.name), category, items)
	}
}

// writeCategory writes the findings of a single pattern category.
func (w *SimpleWriter) writeCategory(sb *strings.Builder, title string, category patternCategory, items []string) {
	sb.WriteString(fmt.Sprintf("[%s] %s (%d)\n", category.indicator, title, len(items)))

	if w.verbose {
		sb.WriteString(fmt.Sprintf("    %s\n", category.description))
	}

	if len(items) == 0 {
		sb.WriteString("  No findings\n\n")
		return
	}

	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  * %s\n", item))
	}
	sb.WriteString("\n")
}

// writeFindingCounts writes the per-category counts for a summary.
func (w *SimpleWriter) writeFindingCounts(sb *strings.Builder, summary *model.Summary) {
	if !summary.HasPatternFindings() && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PATTERN FINDINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  REPEATED:     %d\n", summary.RepeatedCount))
	sb.WriteString(fmt.Sprintf("  SEQUENTIAL:   %d\n", summary.SequentialCount))
	sb.WriteString(fmt.Sprintf("  KEYBOARD:     %d\n", summary.KeyboardCount))
	sb.WriteString(fmt.Sprintf("  SUBSTITUTION: %d\n", summary.SubstitutionCount))
	sb.WriteString(fmt.Sprintf("  DICTIONARY:   %d\n", summary.DictionaryCount))
	sb.WriteString("\n")

	total := summary.RepeatedCount + summary.SequentialCount + summary.KeyboardCount +
		summary.SubstitutionCount + summary.DictionaryCount
	sb.WriteString(fmt.Sprintf("  TOTAL:        %d findings\n", total))
	sb.WriteString("\n")
}

// writeSecurity writes the full security check section.
func (w *SimpleWriter) writeSecurity(sb *strings.Builder, checks model.SecurityFindings) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SECURITY CHECKS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	w.writeCheck(sb, !checks.IsCommon,
		"Not on the common password list",
		"Found on the common password list")
	w.writeCheck(sb, !checks.Pwned,
		"Breach check passed",
		"Flagged by the breach check")
	w.writeCheck(sb, !checks.ContainsPersonalInfo,
		"No personal information patterns",
		"Contains a date-like pattern (year, month, or weekday)")

	met := metCount(checks.BasicRequirements)
	w.writeCheck(sb, checks.BasicRequirements.AllMet,
		fmt.Sprintf("Meets all basic requirements (%d of 5)", met),
		fmt.Sprintf("Basic requirements not met (%d of 5)", met))

	sb.WriteString("\n")
}

// writeSummaryChecks writes the security checks available in a summary.
func (w *SimpleWriter) writeSummaryChecks(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SECURITY CHECKS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	w.writeCheck(sb, !summary.IsCommon,
		"Not on the common password list",
		"Found on the common password list")
	w.writeCheck(sb, !summary.Pwned,
		"Breach check passed",
		"Flagged by the breach check")
	w.writeCheck(sb, summary.RequirementsMet,
		"Meets all basic requirements",
		"Basic requirements not met")

	sb.WriteString("\n")
}

// writeCheck writes one check line with a pass or fail indicator.
func (w *SimpleWriter) writeCheck(sb *strings.Builder, passed bool, passText, failText string) {
	if passed {
		sb.WriteString(fmt.Sprintf("  [+] %s\n", passText))
		return
	}
	sb.WriteString(fmt.Sprintf("  [!] %s\n", failText))
}

// writeRecommendations writes the improvement advice section.
func (w *SimpleWriter) writeRecommendations(sb *strings.Builder, recommendations []string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, rec := range recommendations {
		sb.WriteString(fmt.Sprintf("  * %s\n", rec))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by passcheck\n")
	sb.WriteString("https://github.com/nao1215/passcheck\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// metCount returns how many of the five basic requirements passed.
func metCount(r model.BasicRequirements) int {
	count := 0
	for _, met := range []bool{r.MinLength, r.HasUppercase, r.HasLowercase, r.HasDigit, r.HasSpecial} {
		if met {
			count++
		}
	}
	return count
}
