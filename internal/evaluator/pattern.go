package evaluator

import (
	"fmt"
	"strings"

	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/refdata"
)

// patternAnalyzer runs four independent sub-checks for structure an attacker
// would try early: adjacent repeats, ascending runs, keyboard walks, and
// dictionary words. It also annotates leetspeak substitutions, which are
// advisory only and never penalized.
type patternAnalyzer struct {
	data *refdata.ReferenceData
}

// Name returns the analyzer name.
func (a *patternAnalyzer) Name() string {
	return "pattern"
}

// Analyze fills the pattern findings.
func (a *patternAnalyzer) Analyze(in *input, report *model.Report) {
	report.PatternAnalysis = model.PatternFindings{
		RepeatedChars:       a.findRepeated(in.runes),
		Sequential:          a.findSequential(in.runes),
		KeyboardPatterns:    a.findKeyboardPatterns(in.lower),
		CommonSubstitutions: a.findSubstitutions(in.raw),
		DictionaryWords:     a.findDictionaryWords(in.lower),
	}
}

// findRepeated records each character that appears in two adjacent
// positions, de-duplicated in first-occurrence order. Deterministic order
// keeps repeated evaluations bit-identical.
func (a *patternAnalyzer) findRepeated(runes []rune) []string {
	found := []string{}
	seen := make(map[rune]struct{})

	for i := 0; i+1 < len(runes); i++ {
		if runes[i] != runes[i+1] {
			continue
		}
		if _, dup := seen[runes[i]]; dup {
			continue
		}
		seen[runes[i]] = struct{}{}
		found = append(found, string(runes[i]))
	}
	return found
}

// findSequential records every 3-character window whose codes ascend with
// step exactly one. Overlapping windows are each checked independently, so
// "abcd" yields both "abc" and "bcd". Descending runs are not detected.
func (a *patternAnalyzer) findSequential(runes []rune) []string {
	found := []string{}

	for i := 0; i+2 < len(runes); i++ {
		if runes[i+1] == runes[i]+1 && runes[i+2] == runes[i]+2 {
			found = append(found, string(runes[i:i+3]))
		}
	}
	return found
}

// findKeyboardPatterns slides a 3-key window over each keyboard row and
// records every window contained in the password, case-insensitively.
// Duplicates across rows and windows are kept.
func (a *patternAnalyzer) findKeyboardPatterns(lower string) []string {
	found := []string{}

	for _, row := range a.data.KeyboardRows() {
		for i := 0; i+3 <= len(row); i++ {
			window := row[i : i+3]
			if strings.Contains(lower, window) {
				found = append(found, window)
			}
		}
	}
	return found
}

// findSubstitutions records an annotation for every substitutable character
// present in the password. Presence alone triggers the annotation; this does
// not verify that the character obscures a real word.
func (a *patternAnalyzer) findSubstitutions(raw string) []string {
	found := []string{}

	for _, sub := range a.data.Substitutions() {
		if strings.ContainsRune(raw, sub.Char) {
			found = append(found, fmt.Sprintf("%c → %c", sub.Char, sub.Letter))
		}
	}
	return found
}

// findDictionaryWords records every dictionary word found as a
// case-insensitive substring, in list order, without de-duplication.
func (a *patternAnalyzer) findDictionaryWords(lower string) []string {
	found := []string{}

	for _, word := range a.data.DictionaryWords() {
		if strings.Contains(lower, strings.ToLower(word)) {
			found = append(found, word)
		}
	}
	return found
}
