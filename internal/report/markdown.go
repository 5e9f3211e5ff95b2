package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/passcheck/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
// The password appears only in masked form.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	// Header
	w.writeHeader(md, model.Mask(report.Password), report.Length,
		report.StrengthScore, report.StrengthLevel, report.Entropy, report.CrackTime)

	// Alert based on strength level
	w.writeAlert(md, report.StrengthLevel, report.StrengthScore)

	// Character Composition
	w.writeComposition(md, report.CharacterAnalysis)

	// Pattern Findings
	w.writeFindings(md, report.PatternAnalysis)

	// Security Checks
	w.writeSecurity(md, report.SecurityChecks)

	// Recommendations
	w.writeRecommendations(md, report.Recommendations)

	// Footer
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteSummary outputs the condensed report in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary.Password, summary.Length,
		summary.StrengthScore, summary.StrengthLevel, summary.Entropy, summary.CrackTime)
	w.writeAlert(md, summary.StrengthLevel, summary.StrengthScore)
	w.writeFindingCounts(md, summary)
	w.writeSummaryChecks(md, summary)
	w.writeRecommendations(md, summary.Recommendations)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with the evaluation overview.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, masked string, length, score int, level model.Level, entropy float64, crackTime string) {
	md.H1("Password Strength Report")
	md.PlainText("")

	// Basic info table
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Password", "`" + masked + "`"},
			{"Length", strconv.Itoa(length) + " characters"},
			{"Score", strconv.Itoa(score) + "/100"},
			{"Level", level.String()},
			{"Entropy", fmt.Sprintf("%.2f bits", entropy)},
			{"Crack Time", crackTime},
		},
	})
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the strength level.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, level model.Level, score int) {
	switch level {
	case model.LevelVeryWeak:
		md.Cautionf(
			"This password is rated Very Weak (%d/100). Replace it immediately.",
			score,
		)
	case model.LevelWeak:
		md.Warningf(
			"This password is rated Weak (%d/100) and should be strengthened.",
			score,
		)
	case model.LevelModerate:
		md.Importantf(
			"This password is rated Moderate (%d/100). There is room to improve.",
			score,
		)
	case model.LevelStrong:
		md.Note("This password is rated Strong. A few refinements would make it excellent.")
	default:
		md.Tip("This password is rated Very Strong. Keep rotating it periodically.")
	}
	md.PlainText("")
}

// writeComposition writes the character composition table.
func (w *MarkdownWriter) writeComposition(md *markdown.Markdown, profile model.CharacterProfile) {
	md.H2("Character Composition")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Class", "Count", "Present"},
		Rows: [][]string{
			{"Lowercase", strconv.Itoa(profile.Lowercase), presenceIcon(profile.HasLowercase)},
			{"Uppercase", strconv.Itoa(profile.Uppercase), presenceIcon(profile.HasUppercase)},
			{"Digits", strconv.Itoa(profile.Digits), presenceIcon(profile.HasDigits)},
			{"Special", strconv.Itoa(profile.Special), presenceIcon(profile.HasSpecial)},
			{"**Unique**", "**" + strconv.Itoa(profile.UniqueChars) + "**", "-"},
		},
	})
	md.PlainText("")
}

// presenceIcon returns a visual indicator for a class presence flag.
func presenceIcon(present bool) string {
	if present {
		return "✅"
	}
	return "❌"
}

// writeFindings writes the pattern findings grouped by category.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, findings model.PatternFindings) {
	md.H2("Pattern Findings")
	md.PlainText("")

	if findings.Total() == 0 {
		md.PlainText("No weak patterns detected.")
		md.PlainText("")
		return
	}

	categories := []struct {
		label string
		items []string
	}{
		{"Repeated Characters", findings.RepeatedChars},
		{"Sequential Patterns", findings.Sequential},
		{"Keyboard Patterns", findings.KeyboardPatterns},
		{"Common Substitutions", findings.CommonSubstitutions},
		{"Dictionary Words", findings.DictionaryWords},
	}

	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		detected := "-"
		if len(category.items) > 0 {
			detected = truncateString("`"+strings.Join(category.items, "`, `")+"`", 60)
		}
		rows = append(rows, []string{
			category.label,
			strconv.Itoa(len(category.items)),
			detected,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Count", "Detected"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md,
		len(findings.RepeatedChars),
		len(findings.Sequential),
		len(findings.KeyboardPatterns),
		len(findings.CommonSubstitutions),
		len(findings.DictionaryWords),
	)
}

// writeFindingCounts writes the per-category counts for a summary.
func (w *MarkdownWriter) writeFindingCounts(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Pattern Findings")
	md.PlainText("")

	if !summary.HasPatternFindings() {
		md.PlainText("No weak patterns detected.")
		md.PlainText("")
		return
	}

	total := summary.RepeatedCount + summary.SequentialCount + summary.KeyboardCount +
		summary.SubstitutionCount + summary.DictionaryCount

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Count"},
		Rows: [][]string{
			{"Repeated Characters", strconv.Itoa(summary.RepeatedCount)},
			{"Sequential Patterns", strconv.Itoa(summary.SequentialCount)},
			{"Keyboard Patterns", strconv.Itoa(summary.KeyboardCount)},
			{"Common Substitutions", strconv.Itoa(summary.SubstitutionCount)},
			{"Dictionary Words", strconv.Itoa(summary.DictionaryCount)},
			{"**Total**", "**" + strconv.Itoa(total) + "**"},
		},
	})
	md.PlainText("")

	w.writePieChart(md, summary.RepeatedCount, summary.SequentialCount,
		summary.KeyboardCount, summary.SubstitutionCount, summary.DictionaryCount)
}

// writePieChart writes a mermaid pie chart for the finding distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, repeated, sequential, keyboard, substitutions, dictionary int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Pattern Finding Distribution"),
		piechart.WithShowData(true),
	)

	if repeated > 0 {
		chart.LabelAndIntValue("Repeated", uint64(repeated))
	}
	if sequential > 0 {
		chart.LabelAndIntValue("Sequential", uint64(sequential))
	}
	if keyboard > 0 {
		chart.LabelAndIntValue("Keyboard", uint64(keyboard))
	}
	if substitutions > 0 {
		chart.LabelAndIntValue("Substitutions", uint64(substitutions))
	}
	if dictionary > 0 {
		chart.LabelAndIntValue("Dictionary", uint64(dictionary))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeSecurity writes the full security check table.
func (w *MarkdownWriter) writeSecurity(md *markdown.Markdown, checks model.SecurityFindings) {
	md.H2("Security Checks")
	md.PlainText("")

	met := metCount(checks.BasicRequirements)
	requirements := "✅ Met (5 of 5)"
	if !checks.BasicRequirements.AllMet {
		requirements = fmt.Sprintf("⚠️ Not met (%d of 5)", met)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Check", "Result"},
		Rows: [][]string{
			{"Common password list", checkText(!checks.IsCommon, "Not listed", "Listed")},
			{"Breach check", checkText(!checks.Pwned, "Passed", "Flagged")},
			{"Personal info patterns", checkText(!checks.ContainsPersonalInfo, "None detected", "Detected")},
			{"Basic requirements", requirements},
		},
	})
	md.PlainText("")
}

// writeSummaryChecks writes the security checks available in a summary.
func (w *MarkdownWriter) writeSummaryChecks(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Security Checks")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Check", "Result"},
		Rows: [][]string{
			{"Common password list", checkText(!summary.IsCommon, "Not listed", "Listed")},
			{"Breach check", checkText(!summary.Pwned, "Passed", "Flagged")},
			{"Basic requirements", checkText(summary.RequirementsMet, "Met", "Not met")},
		},
	})
	md.PlainText("")
}

// checkText returns a decorated pass or fail cell for the check table.
func checkText(passed bool, passText, failText string) string {
	if passed {
		return "✅ " + passText
	}
	return "❌ " + failText
}

// writeRecommendations writes the improvement advice list.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, recommendations []string) {
	md.H2("Recommendations")
	md.PlainText("")

	md.BulletList(recommendations...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [passcheck](https://github.com/nao1215/passcheck)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
