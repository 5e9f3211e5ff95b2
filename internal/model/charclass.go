package model

// CharClass identifies the composition category of a single character.
// Every character belongs to exactly one class.
type CharClass int

const (
	// ClassLower is a-z.
	ClassLower CharClass = iota
	// ClassUpper is A-Z.
	ClassUpper
	// ClassDigit is 0-9.
	ClassDigit
	// ClassSpecial is everything else, including all non-ASCII runes.
	ClassSpecial
)

// ClassifyRune assigns a class to r using direct ASCII range tests.
// No regular expressions are involved, so classification cost is constant
// per character regardless of input.
func ClassifyRune(r rune) CharClass {
	switch {
	case r >= 'a' && r <= 'z':
		return ClassLower
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= '0' && r <= '9':
		return ClassDigit
	default:
		return ClassSpecial
	}
}

// String returns the class name as used in reports and logs.
func (c CharClass) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassDigit:
		return "digits"
	case ClassSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// CharsetSize returns the alphabet contribution of this class when
// estimating entropy: 26 letters per case, 10 digits, and an approximate
// 32 printable specials.
func (c CharClass) CharsetSize() int {
	switch c {
	case ClassLower, ClassUpper:
		return 26
	case ClassDigit:
		return 10
	case ClassSpecial:
		return 32
	default:
		return 0
	}
}
