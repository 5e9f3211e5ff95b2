package evaluator

import (
	"fmt"
	"math"

	"github.com/nao1215/passcheck/internal/model"
)

// guessesPerSecond is the assumed attacker throughput for crack time
// estimation: one billion guesses per second, a capable offline rig.
const guessesPerSecond = 1e9

// Duration breakpoints for crack time formatting. A year is exactly 365
// days; leap years are ignored.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31536000
)

// entropyAnalyzer estimates password entropy from character class coverage
// and derives the formatted crack time estimate.
type entropyAnalyzer struct{}

// Name returns the analyzer name.
func (a *entropyAnalyzer) Name() string {
	return "entropy"
}

// Analyze fills the entropy and crack time fields. It reads the character
// profile, so the character analyzer must have run first.
func (a *entropyAnalyzer) Analyze(in *input, report *model.Report) {
	report.Entropy = entropyBits(report.Length, report.CharacterAnalysis)
	report.CrackTime = formatCrackTime(report.Entropy)
}

// entropyBits computes length * log2(charset), where charset sums a fixed
// contribution per present character class (26/26/10/32) regardless of how
// many characters of that class appear. An empty password has zero entropy
// by definition.
func entropyBits(length int, profile model.CharacterProfile) float64 {
	charset := 0
	if profile.HasLowercase {
		charset += model.ClassLower.CharsetSize()
	}
	if profile.HasUppercase {
		charset += model.ClassUpper.CharsetSize()
	}
	if profile.HasDigits {
		charset += model.ClassDigit.CharsetSize()
	}
	if profile.HasSpecial {
		charset += model.ClassSpecial.CharsetSize()
	}

	if charset == 0 {
		return 0
	}
	return round2(float64(length) * math.Log2(float64(charset)))
}

// formatCrackTime renders the average brute-force duration for the given
// entropy. The average case is half the keyspace.
func formatCrackTime(entropy float64) string {
	seconds := math.Exp2(entropy) / (2 * guessesPerSecond)

	switch {
	case seconds < 1:
		return "Instant"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.1f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.1f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.1f days", seconds/secondsPerDay)
	default:
		return fmt.Sprintf("%.1f years", seconds/secondsPerYear)
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
