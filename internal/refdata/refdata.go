package refdata

import (
	_ "embed"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsFile string

//go:embed dictionary_words.txt
var dictionaryWordsFile string

// Substitution pairs a character commonly used in leetspeak with the letter
// it stands in for.
type Substitution struct {
	// Char is the substituted character as it appears in passwords.
	Char rune

	// Letter is the letter the character commonly replaces.
	Letter rune
}

// ReferenceData is the immutable dataset consulted during evaluation.
// Construct it with New; never mutate it afterwards.
type ReferenceData struct {
	commonPasswords map[string]struct{}
	dictionaryWords []string
	keyboardRows    []string
	substitutions   []Substitution
}

// Option configures optional reference data sources.
type Option func(*ReferenceData)

// WithCommonPasswords adds extra entries to the common password set.
// Entries are matched case-insensitively; blanks are ignored.
func WithCommonPasswords(words []string) Option {
	return func(d *ReferenceData) {
		for _, word := range words {
			word = strings.TrimSpace(word)
			if word == "" {
				continue
			}
			d.commonPasswords[strings.ToLower(word)] = struct{}{}
		}
	}
}

// WithDictionaryWords appends extra entries to the dictionary word list.
// Order is preserved because findings are reported in list order.
func WithDictionaryWords(words []string) Option {
	return func(d *ReferenceData) {
		for _, word := range words {
			word = strings.TrimSpace(word)
			if word == "" {
				continue
			}
			d.dictionaryWords = append(d.dictionaryWords, word)
		}
	}
}

// New builds the reference dataset from the embedded lists plus any options.
func New(opts ...Option) *ReferenceData {
	data := &ReferenceData{
		commonPasswords: make(map[string]struct{}),
		dictionaryWords: parseLines(dictionaryWordsFile),
		keyboardRows: []string{
			"qwertyuiop",
			"asdfghjkl",
			"zxcvbnm",
			"1234567890",
		},
		// Table order is the reporting order for substitution findings.
		substitutions: []Substitution{
			{'@', 'a'},
			{'3', 'e'},
			{'1', 'i'},
			{'0', 'o'},
			{'5', 's'},
			{'7', 't'},
			{'4', 'a'},
			{'8', 'b'},
			{'!', 'i'},
		},
	}

	for _, line := range parseLines(commonPasswordsFile) {
		data.commonPasswords[strings.ToLower(line)] = struct{}{}
	}

	for _, opt := range opts {
		opt(data)
	}
	return data
}

// parseLines splits newline-delimited list content, dropping blank lines and
// '#' comments.
func parseLines(content string) []string {
	lines := strings.Split(content, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

// IsCommon reports whether the lower-cased password is an exact member of
// the common password set.
func (d *ReferenceData) IsCommon(password string) bool {
	_, ok := d.commonPasswords[strings.ToLower(password)]
	return ok
}

// CommonPasswordCount returns the size of the common password set.
func (d *ReferenceData) CommonPasswordCount() int {
	return len(d.commonPasswords)
}

// DictionaryWords returns the dictionary word list in reporting order.
// Callers must treat the returned slice as read-only.
func (d *ReferenceData) DictionaryWords() []string {
	return d.dictionaryWords
}

// KeyboardRows returns the keyboard row strings, each a contiguous run of
// physically adjacent keys. Callers must treat the returned slice as
// read-only.
func (d *ReferenceData) KeyboardRows() []string {
	return d.keyboardRows
}

// Substitutions returns the leetspeak substitution table in reporting order.
// Callers must treat the returned slice as read-only.
func (d *ReferenceData) Substitutions() []Substitution {
	return d.substitutions
}
