package mantiq

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchResult pairs one syllogism with its outcome. Index ties the result
// to its position in the input slice; ID is a generated audit identifier
// for downstream correlation, unique per result.
type BatchResult struct {
	ID        string
	Index     int
	Syllogism Syllogism
	Verdict   Verdict
	Err       error // *StructuralError when the input is not a syllogism
}

// BatchReport summarizes the results of a batch verification.
type BatchReport struct {
	Total      int
	Valid      int
	Invalid    int
	Structural int
	Results    []BatchResult
}

// Summary returns a human-readable summary of the batch.
func (r BatchReport) Summary() string {
	return fmt.Sprintf(
		"verified %d syllogisms: %d valid, %d invalid, %d structural errors",
		r.Total, r.Valid, r.Invalid, r.Structural,
	)
}

// ValidResults returns only the results with valid verdicts.
func (r BatchReport) ValidResults() []BatchResult {
	out := make([]BatchResult, 0)
	for _, res := range r.Results {
		if res.Err == nil && res.Verdict.Valid {
			out = append(out, res)
		}
	}
	return out
}

// InvalidResults returns the results that failed one or more validity
// rules.
func (r BatchReport) InvalidResults() []BatchResult {
	out := make([]BatchResult, 0)
	for _, res := range r.Results {
		if res.Err == nil && !res.Verdict.Valid {
			out = append(out, res)
		}
	}
	return out
}

// StructuralResults returns the results whose inputs were not syllogisms
// at all.
func (r BatchReport) StructuralResults() []BatchResult {
	out := make([]BatchResult, 0)
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// VerifyBatch verifies a batch of syllogisms concurrently. Verification is
// pure, so the items need no coordination; the worker count is bounded by
// runtime.NumCPU and every result is written at its input's index, never
// by completion order. The logger may be nil; batch progress is logged at
// Debug and structural errors at Error.
//
// Cancelling the context stops scheduling new items; items already in
// flight finish before the context error is returned.
func (v *Verifier) VerifyBatch(ctx context.Context, logger *zap.Logger, items []Syllogism) (BatchReport, error) {
	results := make([]BatchResult, len(items))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, s := range items {
		select {
		case <-ctx.Done():
			wg.Wait()
			return BatchReport{}, ctx.Err()
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, s Syllogism) {
			defer wg.Done()
			defer func() { <-sem }()

			verdict, err := v.Verify(s)
			results[i] = BatchResult{
				ID:        uuid.New().String(),
				Index:     i,
				Syllogism: s,
				Verdict:   verdict,
				Err:       err,
			}

			if logger == nil {
				return
			}
			if err != nil {
				logger.Error("structural error", zap.Int("index", i), zap.Error(err))
			} else {
				logger.Debug("verified syllogism",
					zap.Int("index", i),
					zap.String("mood", verdict.Mood.String()),
					zap.String("figure", verdict.Figure.String()),
					zap.Bool("valid", verdict.Valid),
				)
			}
		}(i, s)
	}
	wg.Wait()

	report := BatchReport{Total: len(items), Results: results}
	for _, res := range results {
		switch {
		case res.Err != nil:
			report.Structural++
		case res.Verdict.Valid:
			report.Valid++
		default:
			report.Invalid++
		}
	}

	if logger != nil {
		logger.Debug("batch complete",
			zap.Int("total", report.Total),
			zap.Int("valid", report.Valid),
			zap.Int("invalid", report.Invalid),
			zap.Int("structural", report.Structural),
		)
	}
	return report, nil
}

// VerifyBatch verifies a batch with the default configuration.
func VerifyBatch(ctx context.Context, logger *zap.Logger, items []Syllogism) (BatchReport, error) {
	return New().VerifyBatch(ctx, logger, items)
}
