package model

import (
	"encoding/json"
	"fmt"
)

// Level represents the qualitative strength band of a password.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides the
// human-readable label, which is also the JSON wire representation because
// consumers display it verbatim.
type Level int

const (
	// LevelVeryWeak covers scores below 20. Typical causes: very short
	// passwords, single character class, common password list hits.
	LevelVeryWeak Level = iota

	// LevelWeak covers scores from 20 to 39.
	LevelWeak

	// LevelModerate covers scores from 40 to 59.
	LevelModerate

	// LevelStrong covers scores from 60 to 79.
	LevelStrong

	// LevelVeryStrong covers scores of 80 and above. Requires length,
	// full class diversity, and freedom from penalized patterns.
	LevelVeryStrong
)

// String returns the human-readable label for the level.
func (l Level) String() string {
	switch l {
	case LevelVeryWeak:
		return "Very Weak"
	case LevelWeak:
		return "Weak"
	case LevelModerate:
		return "Moderate"
	case LevelStrong:
		return "Strong"
	case LevelVeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// LevelFromScore maps a score to its strength band. Bands are inclusive on
// the lower bound and checked from highest to lowest.
func LevelFromScore(score int) Level {
	switch {
	case score >= 80:
		return LevelVeryStrong
	case score >= 60:
		return LevelStrong
	case score >= 40:
		return LevelModerate
	case score >= 20:
		return LevelWeak
	default:
		return LevelVeryWeak
	}
}

// ParseLevel converts a label back to its Level.
// Unknown labels map to LevelVeryWeak.
func ParseLevel(s string) Level {
	switch s {
	case "Very Weak":
		return LevelVeryWeak
	case "Weak":
		return LevelWeak
	case "Moderate":
		return LevelModerate
	case "Strong":
		return LevelStrong
	case "Very Strong":
		return LevelVeryStrong
	default:
		return LevelVeryWeak
	}
}

// MarshalJSON serializes the level as its label.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON restores a level from its label.
func (l *Level) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("level must be a string: %w", err)
	}
	*l = ParseLevel(label)
	return nil
}
