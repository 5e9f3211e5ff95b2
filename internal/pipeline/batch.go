package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/passcheck/internal/evaluator"
	"github.com/nao1215/passcheck/internal/model"
)

// maxConcurrency caps the worker count. Evaluation is cheap; past this
// point more workers only add scheduling overhead.
const maxConcurrency = 64

// BatchProcessor evaluates many passwords concurrently and aggregates the
// results into an audit report.
//
// Design decision: We keep batch processing separate from the evaluator
// because:
// 1. The evaluator stays a pure single-password function
// 2. Concurrency policy (limits, cancellation) lives in one place
// 3. Aggregation can change without touching the engine
type BatchProcessor struct {
	// eval runs the analysis for each candidate. It is safe for
	// concurrent use, so all workers share one instance.
	eval *evaluator.PasswordEvaluator

	// concurrency is the maximum number of concurrent evaluations.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results holds per-candidate outcomes, indexed by input position.
	// Access is synchronized via mutex.
	results []Result
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent evaluations.
// Default is 10 if not specified; values above the cap are clamped.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = min(n, maxConcurrency)
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor sharing the given
// evaluator across workers.
func NewBatchProcessor(eval *evaluator.PasswordEvaluator, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		eval:        eval,
		concurrency: 10,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// Result is the stored outcome for one candidate. It carries the masked
// echo and metrics only; the plaintext never leaves the processor.
type Result struct {
	// Masked is the masked echo of the candidate.
	Masked string `json:"masked"`

	// Length is the candidate's rune count.
	Length int `json:"length"`

	// Score is the strength score clamped to [0,100].
	Score int `json:"score"`

	// Level is the qualitative band label.
	Level string `json:"level"`

	// Entropy is the estimated bits of randomness.
	Entropy float64 `json:"entropy"`

	// IsCommon records common password list membership.
	IsCommon bool `json:"is_common"`

	// Pwned records the breach check result.
	Pwned bool `json:"pwned"`

	// RequirementsMet records whether all basic requirements were met.
	RequirementsMet bool `json:"requirements_met"`
}

// newResult reduces a report to its storable audit outcome.
func newResult(report *model.Report) Result {
	return Result{
		Masked:          model.Mask(report.Password),
		Length:          report.Length,
		Score:           report.StrengthScore,
		Level:           report.StrengthLevel.String(),
		Entropy:         report.Entropy,
		IsCommon:        report.SecurityChecks.IsCommon,
		Pwned:           report.SecurityChecks.Pwned,
		RequirementsMet: report.SecurityChecks.BasicRequirements.AllMet,
	}
}

// AuditReport is the outcome of a batch evaluation.
type AuditReport struct {
	// Results holds per-candidate outcomes in input order.
	Results []Result `json:"results"`

	// Stats aggregates the results.
	Stats Stats `json:"stats"`
}

// Stats summarizes an audited password list.
type Stats struct {
	// Total is the number of evaluated candidates.
	Total int `json:"total"`

	// AverageScore is the mean strength score.
	AverageScore float64 `json:"average_score"`

	// AverageEntropy is the mean entropy in bits.
	AverageEntropy float64 `json:"average_entropy"`

	// LevelCounts maps level labels to how many candidates landed there.
	LevelCounts map[string]int `json:"level_counts"`

	// CommonCount is how many candidates are on the common password list.
	CommonCount int `json:"common_count"`

	// PwnedCount is how many candidates failed the breach check.
	PwnedCount int `json:"pwned_count"`

	// RequirementsMetCount is how many candidates met all basic requirements.
	RequirementsMetCount int `json:"requirements_met_count"`

	// WeakestMasked is the masked echo of the lowest-scoring candidate.
	WeakestMasked string `json:"weakest_masked"`

	// WeakestScore is the lowest score in the batch.
	WeakestScore int `json:"weakest_score"`

	// StrongestMasked is the masked echo of the highest-scoring candidate.
	StrongestMasked string `json:"strongest_masked"`

	// StrongestScore is the highest score in the batch.
	StrongestScore int `json:"strongest_score"`
}

// Process evaluates every password concurrently and returns the audit
// report. Result order matches input order regardless of scheduling.
// Cancellation stops the batch; the partial error is returned.
func (bp *BatchProcessor) Process(ctx context.Context, passwords []string) (*AuditReport, error) {
	bp.logger.Info("starting audit",
		"total_candidates", len(passwords),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	bp.results = make([]Result, len(passwords))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, password := range passwords {
		i, password := i, password
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := bp.eval.Evaluate(password)

			bp.mu.Lock()
			bp.results[i] = newResult(report)
			bp.mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	audit := &AuditReport{
		Results: bp.results,
		Stats:   computeStats(bp.results),
	}

	bp.logger.Info("audit complete",
		"total_candidates", len(passwords),
		"average_score", audit.Stats.AverageScore,
		"elapsed", time.Since(startTime),
	)

	return audit, nil
}

// computeStats aggregates per-candidate results.
func computeStats(results []Result) Stats {
	stats := Stats{
		Total:       len(results),
		LevelCounts: make(map[string]int),
	}
	if len(results) == 0 {
		return stats
	}

	scoreSum := 0
	entropySum := 0.0
	weakest := results[0]
	strongest := results[0]

	for _, result := range results {
		scoreSum += result.Score
		entropySum += result.Entropy
		stats.LevelCounts[result.Level]++

		if result.IsCommon {
			stats.CommonCount++
		}
		if result.Pwned {
			stats.PwnedCount++
		}
		if result.RequirementsMet {
			stats.RequirementsMetCount++
		}

		if result.Score < weakest.Score {
			weakest = result
		}
		if result.Score > strongest.Score {
			strongest = result
		}
	}

	stats.AverageScore = float64(scoreSum) / float64(len(results))
	stats.AverageEntropy = entropySum / float64(len(results))
	stats.WeakestMasked = weakest.Masked
	stats.WeakestScore = weakest.Score
	stats.StrongestMasked = strongest.Masked
	stats.StrongestScore = strongest.Score

	return stats
}
