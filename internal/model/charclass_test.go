package model

import "testing"

// TestClassifyRune tests character classification over ASCII ranges and
// non-ASCII input.
func TestClassifyRune(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		r        rune
		expected CharClass
	}{
		{"lowercase a", 'a', ClassLower},
		{"lowercase z", 'z', ClassLower},
		{"uppercase A", 'A', ClassUpper},
		{"uppercase Z", 'Z', ClassUpper},
		{"digit 0", '0', ClassDigit},
		{"digit 9", '9', ClassDigit},
		{"at sign", '@', ClassSpecial},
		{"space", ' ', ClassSpecial},
		{"underscore", '_', ClassSpecial},
		{"accented letter", 'é', ClassSpecial},
		{"kana", 'あ', ClassSpecial},
		{"emoji", '🔑', ClassSpecial},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := ClassifyRune(tc.r)
			if result != tc.expected {
				t.Errorf("ClassifyRune(%q) = %v, expected %v", tc.r, result, tc.expected)
			}
		})
	}
}

// TestCharClassString tests the String method of CharClass.
func TestCharClassString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		class    CharClass
		expected string
	}{
		{ClassLower, "lowercase"},
		{ClassUpper, "uppercase"},
		{ClassDigit, "digits"},
		{ClassSpecial, "special"},
		{CharClass(999), "unknown"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.class.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.class.String(), tc.expected)
			}
		})
	}
}

// TestCharClassCharsetSize tests the per-class entropy alphabet sizes.
func TestCharClassCharsetSize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		class    CharClass
		expected int
	}{
		{ClassLower, 26},
		{ClassUpper, 26},
		{ClassDigit, 10},
		{ClassSpecial, 32},
		{CharClass(999), 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.class.String(), func(t *testing.T) {
			t.Parallel()
			if tc.class.CharsetSize() != tc.expected {
				t.Errorf("CharsetSize() = %d, expected %d", tc.class.CharsetSize(), tc.expected)
			}
		})
	}
}
