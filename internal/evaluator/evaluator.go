package evaluator

import (
	"strings"

	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/refdata"
)

// analyzer is one stage of the evaluation pipeline. Implementations fill
// their section of the report in place.
type analyzer interface {
	// Name returns the analyzer's name for logging and debugging.
	Name() string

	// Analyze inspects the password and records its findings on the report.
	Analyze(in *input, report *model.Report)
}

// input carries the password in the forms the analyzers need.
//
// Design decision: We precompute the rune slice and the lower-cased form
// once rather than passing the raw string because:
//  1. Several analyzers need rune indexing, which is O(n) per access on a string
//  2. The lower-cased form is used by four independent sub-checks
//  3. Adding a derived form later doesn't change analyzer signatures
type input struct {
	// raw is the password exactly as submitted.
	raw string

	// runes is the password decoded into runes for positional checks.
	runes []rune

	// lower is the lower-cased password for case-insensitive checks.
	lower string
}

// newInput derives all password forms from the submitted string.
func newInput(password string) *input {
	return &input{
		raw:   password,
		runes: []rune(password),
		lower: strings.ToLower(password),
	}
}

// PasswordEvaluator runs the fixed analysis pipeline against candidate
// passwords. It holds only immutable reference data, so a single evaluator
// is safe for concurrent use.
type PasswordEvaluator struct {
	data      *refdata.ReferenceData
	breach    BreachChecker
	analyzers []analyzer
}

// Option configures a PasswordEvaluator.
type Option func(*PasswordEvaluator)

// WithBreachChecker replaces the built-in list-backed breach checker.
// Implementations must be non-blocking; see BreachChecker.
func WithBreachChecker(checker BreachChecker) Option {
	return func(e *PasswordEvaluator) {
		e.breach = checker
	}
}

// New creates a PasswordEvaluator over the given reference data.
func New(data *refdata.ReferenceData, opts ...Option) *PasswordEvaluator {
	e := &PasswordEvaluator{data: data}
	for _, opt := range opts {
		opt(e)
	}
	if e.breach == nil {
		e.breach = NewListBreachChecker(data)
	}

	// Registration order is evaluation order. The security and entropy
	// analyzers read the character profile, so the character analyzer
	// must run first.
	e.analyzers = []analyzer{
		&characterAnalyzer{},
		&patternAnalyzer{data: data},
		&securityAnalyzer{data: data, breach: e.breach},
		&entropyAnalyzer{},
	}
	return e
}

// Evaluate runs every analyzer over the password and synthesizes the score,
// level, and recommendations. It is a total function: any string, including
// the empty string, produces a complete report.
func (e *PasswordEvaluator) Evaluate(password string) *model.Report {
	report := model.NewReport(password)
	in := newInput(password)

	for _, a := range e.analyzers {
		a.Analyze(in, report)
	}

	report.StrengthScore = score(report)
	report.StrengthLevel = model.LevelFromScore(report.StrengthScore)
	report.Recommendations = recommend(report)
	return report
}
