package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	// DefaultLength is used when the caller does not request a length.
	DefaultLength = 16

	// MinLength is the shortest generatable password: one character from
	// each of the four classes.
	MinLength = 4
)

// Character classes drawn from during generation. The symbol set matches
// the special characters recommended to users, so generated passwords never
// contain symbols the advice does not mention.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*"
)

// ErrLengthTooShort is returned when the requested length cannot hold one
// character from each class.
var ErrLengthTooShort = errors.New("password length must be at least 4")

// Generate returns a random password of the given length. A length of zero
// or less selects DefaultLength. The result always contains at least one
// character from each class, with the remaining positions drawn uniformly
// from the union of all classes and the whole shuffled so the guaranteed
// characters land at unpredictable positions.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	if length < MinLength {
		return "", ErrLengthTooShort
	}

	classes := []string{lowercaseChars, uppercaseChars, digitChars, symbolChars}
	all := lowercaseChars + uppercaseChars + digitChars + symbolChars

	password := make([]byte, 0, length)
	for _, class := range classes {
		c, err := pickChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < length {
		c, err := pickChar(all)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// pickChar draws one character from charset. rand.Int performs rejection
// sampling internally, so the draw is uniform for any charset size.
func pickChar(charset string) (byte, error) {
	index, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return charset[index.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle in place.
func shuffle(password []byte) error {
	for i := len(password) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("failed to read random source: %w", err)
		}
		password[i], password[j.Int64()] = password[j.Int64()], password[i]
	}
	return nil
}
