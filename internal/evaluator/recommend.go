package evaluator

import "github.com/nao1215/passcheck/internal/model"

// Recommendation messages. Consumers display these verbatim, so the wording
// is part of the output contract.
const (
	adviceMinLength       = "Use at least 8 characters"
	adviceLongerLength    = "Consider using 12+ characters for better security"
	adviceAddUppercase    = "Add uppercase letters"
	adviceAddLowercase    = "Add lowercase letters"
	adviceAddDigits       = "Add numbers"
	adviceAddSpecial      = "Add special characters (!@#$%^&*)"
	adviceAvoidCommon     = "Avoid common passwords"
	adviceAvoidRepeated   = "Avoid repeated characters"
	adviceAvoidSequential = "Avoid sequential patterns (abc, 123)"
	adviceAvoidKeyboard   = "Avoid keyboard patterns (qwerty, asdf)"
	adviceAvoidDictionary = "Avoid dictionary words"
	adviceExcellent       = "Excellent password! Consider changing it regularly."
)

// recommend builds the advice list in a fixed order: length, missing
// character classes, common password membership, then one entry per
// penalized pattern category with findings. Advice items are independent
// and can co-occur. A password with nothing to improve gets a single
// positive message so the list is never empty.
func recommend(report *model.Report) []string {
	advice := []string{}

	if report.Length < 8 {
		advice = append(advice, adviceMinLength)
	} else if report.Length < 12 {
		advice = append(advice, adviceLongerLength)
	}

	profile := report.CharacterAnalysis
	if !profile.HasUppercase {
		advice = append(advice, adviceAddUppercase)
	}
	if !profile.HasLowercase {
		advice = append(advice, adviceAddLowercase)
	}
	if !profile.HasDigits {
		advice = append(advice, adviceAddDigits)
	}
	if !profile.HasSpecial {
		advice = append(advice, adviceAddSpecial)
	}

	if report.SecurityChecks.IsCommon {
		advice = append(advice, adviceAvoidCommon)
	}

	findings := report.PatternAnalysis
	if len(findings.RepeatedChars) > 0 {
		advice = append(advice, adviceAvoidRepeated)
	}
	if len(findings.Sequential) > 0 {
		advice = append(advice, adviceAvoidSequential)
	}
	if len(findings.KeyboardPatterns) > 0 {
		advice = append(advice, adviceAvoidKeyboard)
	}
	if len(findings.DictionaryWords) > 0 {
		advice = append(advice, adviceAvoidDictionary)
	}

	if len(advice) == 0 {
		advice = append(advice, adviceExcellent)
	}
	return advice
}
