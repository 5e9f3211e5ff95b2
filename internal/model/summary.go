package model

// Summary is a condensed, always-masked view of a Report.
//
// Design decision: We create a separate summary type rather than printing
// parts of Report because:
// 1. It is safe by construction: the password is masked when it is built
// 2. It can be serialized to JSON for tools that want structured but simple output
// 3. It is the shape stored by the history database and shown in trend output
type Summary struct {
	// Password is the masked echo of the evaluated password.
	Password string `json:"password"`

	// Length is the password length in runes.
	Length int `json:"length"`

	// StrengthScore is the total score in [0,100].
	StrengthScore int `json:"strength_score"`

	// StrengthLevel is the qualitative band.
	StrengthLevel Level `json:"strength_level"`

	// Entropy is the estimated bits of randomness.
	Entropy float64 `json:"entropy"`

	// CrackTime is the formatted average brute-force duration.
	CrackTime string `json:"crack_time"`

	// === Finding counts ===

	// RepeatedCount is the number of distinct repeated characters.
	RepeatedCount int `json:"repeated_count"`

	// SequentialCount is the number of ascending-run findings.
	SequentialCount int `json:"sequential_count"`

	// KeyboardCount is the number of keyboard row window findings.
	KeyboardCount int `json:"keyboard_count"`

	// SubstitutionCount is the number of leetspeak annotations.
	SubstitutionCount int `json:"substitution_count"`

	// DictionaryCount is the number of dictionary word findings.
	DictionaryCount int `json:"dictionary_count"`

	// === Security checks ===

	// IsCommon is true if the password is on the common password list.
	IsCommon bool `json:"is_common"`

	// Pwned is the breach check result.
	Pwned bool `json:"pwned_check"`

	// RequirementsMet is true if the basic composition policy passed.
	RequirementsMet bool `json:"requirements_met"`

	// Recommendations lists the improvement advice from the report.
	Recommendations []string `json:"recommendations"`
}

// NewSummary condenses a report into its masked summary.
func NewSummary(r *Report) *Summary {
	return &Summary{
		Password:          Mask(r.Password),
		Length:            r.Length,
		StrengthScore:     r.StrengthScore,
		StrengthLevel:     r.StrengthLevel,
		Entropy:           r.Entropy,
		CrackTime:         r.CrackTime,
		RepeatedCount:     len(r.PatternAnalysis.RepeatedChars),
		SequentialCount:   len(r.PatternAnalysis.Sequential),
		KeyboardCount:     len(r.PatternAnalysis.KeyboardPatterns),
		SubstitutionCount: len(r.PatternAnalysis.CommonSubstitutions),
		DictionaryCount:   len(r.PatternAnalysis.DictionaryWords),
		IsCommon:          r.SecurityChecks.IsCommon,
		Pwned:             r.SecurityChecks.Pwned,
		RequirementsMet:   r.SecurityChecks.BasicRequirements.AllMet,
		Recommendations:   r.Recommendations,
	}
}

// HasPatternFindings returns true if any penalized or advisory pattern was
// found.
func (s *Summary) HasPatternFindings() bool {
	return s.RepeatedCount > 0 || s.SequentialCount > 0 || s.KeyboardCount > 0 ||
		s.SubstitutionCount > 0 || s.DictionaryCount > 0
}
