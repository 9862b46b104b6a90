package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/deallens/backend/internal/domain"
)

// ExtractionConfig holds configuration for the extraction pipeline
type ExtractionConfig struct {
	WindowRadius  int
	MinNameLength int
	MaxNameLength int
	MinNameScore  float64
	PriceCeiling  float64
	Debug         bool
}

// ExtractionService runs the full extraction pipeline for one retailer's
// catalogue: normalize lines, scan for price tokens, resolve product names
// around each current price, build records, then enrich brand and
// category. Single-threaded and deterministic: given identical lines and
// configuration the output is byte-identical across runs.
type ExtractionService struct {
	normalizer *LineNormalizer
	scanner    *PriceScanner
	resolver   *ContextResolver
	classifier *Classifier
	debug      bool
}

// NewExtractionService creates the extraction pipeline from vocabulary and
// configuration. Vocabulary problems surface here, before any batch runs.
func NewExtractionService(vocab *domain.Vocabulary, cfg ExtractionConfig) (*ExtractionService, error) {
	scanner := NewPriceScanner(cfg.PriceCeiling)

	resolver, err := NewContextResolver(ResolverConfig{
		Radius:        cfg.WindowRadius,
		MinNameLength: cfg.MinNameLength,
		MaxNameLength: cfg.MaxNameLength,
		MinScore:      cfg.MinNameScore,
		Debug:         cfg.Debug,
	}, scanner, vocab)
	if err != nil {
		return nil, err
	}

	classifier, err := NewClassifier(vocab)
	if err != nil {
		return nil, err
	}

	return &ExtractionService{
		normalizer: NewLineNormalizer(vocab),
		scanner:    scanner,
		resolver:   resolver,
		classifier: classifier,
		debug:      cfg.Debug,
	}, nil
}

// candidate pairs a current-price token with its resolved name context
type candidate struct {
	token domain.PriceToken
	ctx   *NameContext
}

// Extract converts one retailer's raw catalogue lines into deal records.
// Unresolvable tokens and invalid candidates are skipped, counted, and
// never abort the batch — garbled input degrades completeness, not
// stability.
func (s *ExtractionService) Extract(ctx context.Context, lines []string, retailer string) ([]domain.DealRecord, domain.ExtractionStats, error) {
	stats := domain.ExtractionStats{LinesScanned: len(lines)}

	if strings.TrimSpace(retailer) == "" {
		return nil, stats, domain.ErrInvalidRequest
	}

	normalized := s.normalizer.NormalizeAll(lines)
	for _, line := range normalized {
		if line != "" {
			stats.LinesKept++
		}
	}

	var currents []domain.PriceToken
	for i, line := range normalized {
		select {
		case <-ctx.Done():
			return nil, stats, ctx.Err()
		default:
		}
		for _, tok := range s.scanner.Scan(line, i) {
			stats.PriceTokens++
			if tok.Kind == domain.PriceCurrent {
				currents = append(currents, tok)
			}
		}
	}
	stats.Candidates = len(currents)

	candidates := s.resolveCandidates(normalized, currents, &stats)

	builder := NewRecordBuilder(retailer, s.debug)
	records := make([]domain.DealRecord, 0, len(candidates))
	for _, cand := range candidates {
		record, err := builder.Build(cand.token, cand.ctx)
		if err != nil {
			// Expected steady-state outcome on noisy input
			if s.debug {
				log.Printf("[EXTRACT] skipping token at line %d: %v", cand.token.LineIndex, err)
			}
			if errors.Is(err, domain.ErrNoProductName) {
				stats.SkippedNoName++
			} else {
				stats.SkippedInvalid++
			}
			continue
		}
		records = append(records, *record)
	}

	s.classifier.Enrich(records)
	stats.Records = len(records)

	var bestDiscount float64
	for _, record := range records {
		if record.OnSpecial() {
			stats.Specials++
		}
		if pct := record.DiscountPercentage(); pct > bestDiscount {
			bestDiscount = pct
		}
	}

	log.Printf("[EXTRACT] %s: %d records from %d lines (%d on special, best -%.1f%%, %d skipped)",
		retailer, stats.Records, stats.LinesScanned, stats.Specials,
		bestDiscount, stats.SkippedNoName+stats.SkippedInvalid)

	return records, stats, nil
}

// resolveCandidates resolves a name context for every current-price token
// and collapses competing tokens by proximity: when several currents
// resolve to the same name line, the token nearest that line wins and the
// rest are dropped as duplicates of the same product.
func (s *ExtractionService) resolveCandidates(lines []string, currents []domain.PriceToken, stats *domain.ExtractionStats) []candidate {
	bestByName := make(map[int]candidate)
	var nameOrder []int

	for _, tok := range currents {
		nameCtx := s.resolver.Resolve(lines, tok.LineIndex)
		if nameCtx == nil {
			stats.SkippedNoName++
			continue
		}

		prev, ok := bestByName[nameCtx.LineIndex]
		if !ok {
			bestByName[nameCtx.LineIndex] = candidate{token: tok, ctx: nameCtx}
			nameOrder = append(nameOrder, nameCtx.LineIndex)
			continue
		}

		if distance(tok.LineIndex, nameCtx.LineIndex) < distance(prev.token.LineIndex, nameCtx.LineIndex) {
			bestByName[nameCtx.LineIndex] = candidate{token: tok, ctx: nameCtx}
		}
	}

	sort.Ints(nameOrder)
	out := make([]candidate, 0, len(nameOrder))
	for _, idx := range nameOrder {
		out = append(out, bestByName[idx])
	}
	return out
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
