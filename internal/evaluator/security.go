package evaluator

import (
	"strings"

	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/refdata"
)

// monthAbbreviations are the date fragments flagged by the personal
// information heuristic.
var monthAbbreviations = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// weekdayNames are matched in full; short forms collide with too many
// ordinary words.
var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday",
	"friday", "saturday", "sunday",
}

// securityAnalyzer runs list membership and policy checks: common password
// membership, the personal information heuristic, the breach check, and the
// basic composition requirements.
type securityAnalyzer struct {
	data   *refdata.ReferenceData
	breach BreachChecker
}

// Name returns the analyzer name.
func (a *securityAnalyzer) Name() string {
	return "security"
}

// Analyze fills the security findings. It reads the character profile, so
// the character analyzer must have run first.
func (a *securityAnalyzer) Analyze(in *input, report *model.Report) {
	profile := report.CharacterAnalysis

	requirements := model.BasicRequirements{
		MinLength:    report.Length >= 8,
		HasUppercase: profile.HasUppercase,
		HasLowercase: profile.HasLowercase,
		HasDigit:     profile.HasDigits,
		HasSpecial:   profile.HasSpecial,
	}
	requirements.AllMet = requirements.MinLength && requirements.HasUppercase &&
		requirements.HasLowercase && requirements.HasDigit && requirements.HasSpecial

	report.SecurityChecks = model.SecurityFindings{
		IsCommon:             a.data.IsCommon(in.raw),
		ContainsPersonalInfo: containsPersonalInfo(in.lower),
		Pwned:                a.breach.IsBreached(in.raw),
		BasicRequirements:    requirements,
	}
}

// containsPersonalInfo reports whether the lower-cased password contains a
// pattern that often encodes personal data: a four-digit run (a candidate
// year), an abbreviated month name, or a full weekday name. The engine has
// no actual user data, so this is a heuristic proxy.
func containsPersonalInfo(lower string) bool {
	if hasDigitRun(lower, 4) {
		return true
	}
	for _, month := range monthAbbreviations {
		if strings.Contains(lower, month) {
			return true
		}
	}
	for _, day := range weekdayNames {
		if strings.Contains(lower, day) {
			return true
		}
	}
	return false
}

// hasDigitRun reports whether s contains n consecutive ASCII digits.
func hasDigitRun(s string, n int) bool {
	run := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			run++
			if run >= n {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}
