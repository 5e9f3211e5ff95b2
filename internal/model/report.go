package model

import (
	"strings"
	"unicode/utf8"
)

// MaskRune is the character used to mask passwords at every output boundary.
const MaskRune = '*'

// Report is the complete result of evaluating a single password.
// Every field is derived from the input string plus the immutable reference
// data; there is no hidden state and no cross-call identity.
//
// Design decision: We use a fixed, strongly typed struct rather than an
// open-ended map because:
// 1. It gives callers and tests a stable contract
// 2. It keeps the JSON key set identical across every evaluation
// 3. It prevents analyzers from inventing undocumented fields
type Report struct {
	// Password is the evaluated password in the clear. It exists so the
	// engine result is self-contained; boundaries must replace it with
	// Mask(password) before the report leaves the process.
	Password string `json:"password"`

	// Length is the number of characters (runes) in the password.
	Length int `json:"length"`

	// StrengthScore is the total score clamped to [0,100].
	StrengthScore int `json:"strength_score"`

	// StrengthLevel is the qualitative band derived from StrengthScore.
	StrengthLevel Level `json:"strength_level"`

	// CharacterAnalysis holds per-class counts and presence flags.
	CharacterAnalysis CharacterProfile `json:"character_analysis"`

	// PatternAnalysis holds every weak pattern detected in the password.
	PatternAnalysis PatternFindings `json:"pattern_analysis"`

	// SecurityChecks holds list membership and policy check results.
	SecurityChecks SecurityFindings `json:"security_checks"`

	// Entropy is the estimated bits of randomness, rounded to 2 decimals.
	Entropy float64 `json:"entropy"`

	// CrackTime is the formatted average time to brute-force the password
	// at one billion guesses per second.
	CrackTime string `json:"crack_time"`

	// Recommendations lists improvement advice in a fixed order. Never
	// empty: a password with nothing to improve gets a single positive
	// message instead.
	Recommendations []string `json:"recommendations"`
}

// CharacterProfile describes the character composition of a password.
// Classification uses ASCII semantics: a-z, A-Z, 0-9, and everything else
// (including all non-ASCII runes) counts as special.
type CharacterProfile struct {
	// Lowercase is the count of a-z characters.
	Lowercase int `json:"lowercase"`

	// Uppercase is the count of A-Z characters.
	Uppercase int `json:"uppercase"`

	// Digits is the count of 0-9 characters.
	Digits int `json:"digits"`

	// Special is the count of everything else.
	Special int `json:"special"`

	// HasLowercase is true if Lowercase > 0.
	HasLowercase bool `json:"has_lowercase"`

	// HasUppercase is true if Uppercase > 0.
	HasUppercase bool `json:"has_uppercase"`

	// HasDigits is true if Digits > 0.
	HasDigits bool `json:"has_digits"`

	// HasSpecial is true if Special > 0.
	HasSpecial bool `json:"has_special"`

	// UniqueChars is the number of distinct runes in the password.
	UniqueChars int `json:"unique_chars"`
}

// ClassCount returns how many of the four class presence flags are set.
func (p CharacterProfile) ClassCount() int {
	count := 0
	for _, present := range []bool{p.HasLowercase, p.HasUppercase, p.HasDigits, p.HasSpecial} {
		if present {
			count++
		}
	}
	return count
}

// PatternFindings holds every weak pattern detected in a password.
// All slices are initialized empty (never nil) so JSON output renders [].
type PatternFindings struct {
	// RepeatedChars lists each character that appears at least twice in
	// adjacent positions, de-duplicated in first-occurrence order.
	RepeatedChars []string `json:"repeated_chars"`

	// Sequential lists every 3-character window whose codes ascend with
	// step exactly one ("abc", "123"). Overlapping windows are recorded
	// independently; descending runs are not detected.
	Sequential []string `json:"sequential"`

	// KeyboardPatterns lists every 3-key keyboard row window found in the
	// password, case-insensitively. Duplicates across rows and windows
	// are kept.
	KeyboardPatterns []string `json:"keyboard_patterns"`

	// CommonSubstitutions lists leetspeak annotations such as "@ → a"
	// for every substitutable character present in the password.
	CommonSubstitutions []string `json:"common_substitutions"`

	// DictionaryWords lists every word from the built-in list found as a
	// case-insensitive substring, in list order, without de-duplication.
	DictionaryWords []string `json:"dictionary_words"`
}

// NewPatternFindings returns findings with all slices allocated empty.
func NewPatternFindings() PatternFindings {
	return PatternFindings{
		RepeatedChars:       []string{},
		Sequential:          []string{},
		KeyboardPatterns:    []string{},
		CommonSubstitutions: []string{},
		DictionaryWords:     []string{},
	}
}

// Total returns the number of recorded findings across all categories.
func (f PatternFindings) Total() int {
	return len(f.RepeatedChars) + len(f.Sequential) + len(f.KeyboardPatterns) +
		len(f.CommonSubstitutions) + len(f.DictionaryWords)
}

// BasicRequirements is the minimum composition policy: at least 8 characters
// and at least one character from each of the four classes.
type BasicRequirements struct {
	// MinLength is true if the password has 8 or more characters.
	MinLength bool `json:"min_length"`

	// HasUppercase is true if at least one A-Z character is present.
	HasUppercase bool `json:"has_uppercase"`

	// HasLowercase is true if at least one a-z character is present.
	HasLowercase bool `json:"has_lowercase"`

	// HasDigit is true if at least one 0-9 character is present.
	HasDigit bool `json:"has_digit"`

	// HasSpecial is true if at least one special character is present.
	HasSpecial bool `json:"has_special"`

	// AllMet is the logical AND of the five checks above.
	AllMet bool `json:"all_met"`
}

// SecurityFindings holds list membership and policy check results.
type SecurityFindings struct {
	// IsCommon is true if the lower-cased password is an exact member of
	// the common password list.
	IsCommon bool `json:"is_common"`

	// ContainsPersonalInfo is true if the password contains a pattern
	// that often encodes personal data: a four-digit run (a candidate
	// year), an abbreviated month name, or a full weekday name. This is
	// a heuristic; no actual user data is consulted.
	ContainsPersonalInfo bool `json:"contains_personal_info"`

	// Pwned reports the breach check result. The default checker reuses
	// the common password list, so out of the box Pwned equals IsCommon.
	Pwned bool `json:"pwned_check"`

	// BasicRequirements is the minimum composition policy result.
	BasicRequirements BasicRequirements `json:"meets_basic_requirements"`
}

// NewReport creates a report for the given password with zero-valued
// analysis fields. Analyzers fill the rest in place.
func NewReport(password string) *Report {
	return &Report{
		Password:        password,
		Length:          utf8.RuneCountInString(password),
		StrengthLevel:   LevelVeryWeak,
		PatternAnalysis: NewPatternFindings(),
		Recommendations: []string{},
	}
}

// Masked returns a shallow copy of the report with the password replaced by
// its mask. Boundary layers call this before serializing a report for an
// external caller. The copy shares the finding slices, which are read-only
// once evaluation completes.
func (r *Report) Masked() *Report {
	masked := *r
	masked.Password = Mask(r.Password)
	return &masked
}

// Mask returns a string of MaskRune with the same rune count as s.
func Mask(s string) string {
	return strings.Repeat(string(MaskRune), utf8.RuneCountInString(s))
}
