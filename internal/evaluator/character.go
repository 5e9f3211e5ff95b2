package evaluator

import "github.com/nao1215/passcheck/internal/model"

// characterAnalyzer counts character classes in a single pass. Every rune is
// assigned to exactly one class; non-ASCII runes count as special.
type characterAnalyzer struct{}

// Name returns the analyzer name.
func (a *characterAnalyzer) Name() string {
	return "character"
}

// Analyze fills the character profile. An empty password yields an all-zero
// profile with every flag false.
func (a *characterAnalyzer) Analyze(in *input, report *model.Report) {
	var profile model.CharacterProfile
	distinct := make(map[rune]struct{}, len(in.runes))

	for _, r := range in.runes {
		distinct[r] = struct{}{}
		switch model.ClassifyRune(r) {
		case model.ClassLower:
			profile.Lowercase++
		case model.ClassUpper:
			profile.Uppercase++
		case model.ClassDigit:
			profile.Digits++
		default:
			profile.Special++
		}
	}

	profile.HasLowercase = profile.Lowercase > 0
	profile.HasUppercase = profile.Uppercase > 0
	profile.HasDigits = profile.Digits > 0
	profile.HasSpecial = profile.Special > 0
	profile.UniqueChars = len(distinct)

	report.CharacterAnalysis = profile
}
