package evaluator

import (
	"math"

	"github.com/nao1215/passcheck/internal/model"
)

// Scoring weights. Bonuses reward length, class diversity, entropy, and
// clean security checks; penalties subtract for each penalized pattern
// category that produced findings. Substitution annotations and the
// personal information heuristic never affect the score.
const (
	pointsPerClass = 6.25

	bonusNotCommon       = 10
	bonusNotPwned        = 10
	bonusRequirementsMet = 10

	penaltyRepeated   = 5
	penaltySequential = 10
	penaltyKeyboard   = 10
	penaltyDictionary = 15
)

// score computes the additive strength score from a filled report, rounded
// and clamped to [0,100].
func score(report *model.Report) int {
	total := lengthPoints(report.Length)
	total += float64(report.CharacterAnalysis.ClassCount()) * pointsPerClass
	total += entropyPoints(report.Entropy)

	if !report.SecurityChecks.IsCommon {
		total += bonusNotCommon
	}
	if !report.SecurityChecks.Pwned {
		total += bonusNotPwned
	}
	if report.SecurityChecks.BasicRequirements.AllMet {
		total += bonusRequirementsMet
	}

	// Penalties stack independently, one per non-empty category.
	findings := report.PatternAnalysis
	if len(findings.RepeatedChars) > 0 {
		total -= penaltyRepeated
	}
	if len(findings.Sequential) > 0 {
		total -= penaltySequential
	}
	if len(findings.KeyboardPatterns) > 0 {
		total -= penaltyKeyboard
	}
	if len(findings.DictionaryWords) > 0 {
		total -= penaltyDictionary
	}

	rounded := int(math.Round(total))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// lengthPoints awards the single highest matching length band.
func lengthPoints(length int) float64 {
	switch {
	case length >= 12:
		return 25
	case length >= 8:
		return 15
	case length >= 6:
		return 10
	case length >= 4:
		return 5
	default:
		return 0
	}
}

// entropyPoints awards the single highest matching entropy band.
func entropyPoints(entropy float64) float64 {
	switch {
	case entropy >= 60:
		return 20
	case entropy >= 40:
		return 15
	case entropy >= 25:
		return 10
	case entropy >= 15:
		return 5
	default:
		return 0
	}
}
