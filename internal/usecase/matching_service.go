package usecase

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deallens/backend/internal/domain"
)

// MatchingConfig holds configuration for the cross-retailer matcher
type MatchingConfig struct {
	// Threshold is the minimum similarity for a committed pair.
	// Zero or negative falls back to the default of 0.55.
	Threshold float64
	Debug     bool
}

// MatchingService pairs deal records across two retailers with a greedy
// one-to-one assignment. Deliberately not a global optimal bipartite
// matching: catalogue sizes are in the hundreds and the O(|A|×|B|) single
// pass is plenty. A stricter solver could replace matchOne behind the same
// Match interface without touching extraction.
type MatchingService struct {
	scorer    *Scorer
	threshold float64
	debug     bool
}

// NewMatchingService creates a matcher over the given scorer
func NewMatchingService(cfg MatchingConfig, scorer *Scorer) *MatchingService {
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = 0.55
	}
	return &MatchingService{
		scorer:    scorer,
		threshold: threshold,
		debug:     cfg.Debug,
	}
}

// Match finds one-to-one product pairs between two catalogues. For each A
// record in original order, the best-scoring unconsumed B record at or
// above the threshold is committed; consumed B records cannot match twice.
// B iteration order is stable, and an exact score tie keeps the
// first-encountered B candidate, so output is reproducible.
func (m *MatchingService) Match(ctx context.Context, recordsA, recordsB []domain.DealRecord) ([]domain.MatchResult, error) {
	var results []domain.MatchResult
	consumed := make([]bool, len(recordsB))

	for _, a := range recordsA {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		bestScore := 0.0
		bestIdx := -1
		for j, b := range recordsB {
			if consumed[j] {
				continue
			}
			if score := m.scorer.Score(a.ProductName, b.ProductName); score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}

		if bestIdx < 0 || bestScore < m.threshold {
			// A records with no qualifying candidate stay unmatched
			continue
		}

		consumed[bestIdx] = true
		results = append(results, newMatchResult(a, recordsB[bestIdx], bestScore))

		if m.debug {
			log.Printf("[MATCH] %q <-> %q (%.3f)", a.ProductName, recordsB[bestIdx].ProductName, bestScore)
		}
	}

	return results, nil
}

// Compare runs Match and summarizes the outcome for operators: who was
// cheaper how often, total potential savings per side, and the average
// price difference across committed pairs.
func (m *MatchingService) Compare(ctx context.Context, retailerA, retailerB string, recordsA, recordsB []domain.DealRecord) (*domain.ComparisonReport, error) {
	matches, err := m.Match(ctx, recordsA, recordsB)
	if err != nil {
		return nil, err
	}

	report := &domain.ComparisonReport{
		RetailerA:   retailerA,
		RetailerB:   retailerB,
		CandidatesA: len(recordsA),
		CandidatesB: len(recordsB),
		Matches:     matches,
		GeneratedAt: time.Now().UTC(),
	}

	var totalDiff decimal.Decimal
	for _, match := range matches {
		totalDiff = totalDiff.Add(match.PriceDifference)
		switch match.CheaperSide {
		case domain.SideA:
			report.ACheaperCount++
			report.TotalSavingsA = report.TotalSavingsA.Add(match.PriceDifference)
		case domain.SideB:
			report.BCheaperCount++
			report.TotalSavingsB = report.TotalSavingsB.Add(match.PriceDifference)
		default:
			report.TieCount++
		}
	}
	if len(matches) > 0 {
		report.AvgDifference = totalDiff.Div(decimal.NewFromInt(int64(len(matches)))).Round(2)
	}

	log.Printf("[MATCH] %s vs %s: %d matches from %d x %d candidates",
		retailerA, retailerB, len(matches), len(recordsA), len(recordsB))

	return report, nil
}

// newMatchResult computes the price comparison for a committed pair
func newMatchResult(a, b domain.DealRecord, score float64) domain.MatchResult {
	side := domain.SideTie
	switch {
	case a.CurrentPrice.LessThan(b.CurrentPrice):
		side = domain.SideA
	case b.CurrentPrice.LessThan(a.CurrentPrice):
		side = domain.SideB
	}

	return domain.MatchResult{
		ProductA:        a,
		ProductB:        b,
		Similarity:      score,
		CheaperSide:     side,
		PriceDifference: a.CurrentPrice.Sub(b.CurrentPrice).Abs(),
	}
}
