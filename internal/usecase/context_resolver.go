package usecase

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/deallens/backend/internal/domain"
)

// Candidate scoring weights. Keyword presence dominates: a plausible-length
// line with no domain keyword is more often page furniture than a product.
const (
	keywordScore    = 3.0
	lengthScore     = 1.0
	proximityWeight = 1.0
)

// ResolverConfig holds configuration for the context resolver
type ResolverConfig struct {
	Radius        int
	MinNameLength int
	MaxNameLength int
	MinScore      float64
	Debug         bool
}

// NameContext is the resolver output for one current-price anchor: the
// best-candidate product name plus whatever promotional context the
// surrounding window held.
type NameContext struct {
	Name      string
	LineIndex int
	BrandHint string

	Was       decimal.Decimal
	Save      decimal.Decimal
	Percent   int
	HalfPrice bool
	DownDown  bool
	UnitPrice string
}

// ContextResolver locates the product name belonging to a detected current
// price by scoring the lines of a bounded window around the anchor.
type ContextResolver struct {
	cfg         ResolverConfig
	scanner     *PriceScanner
	keywords    []string
	brands      []string
	brandsLower []string
}

// NewContextResolver creates a context resolver over the vocabulary's brand
// and category keyword tables.
func NewContextResolver(cfg ResolverConfig, scanner *PriceScanner, vocab *domain.Vocabulary) (*ContextResolver, error) {
	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	if cfg.Radius <= 0 {
		cfg.Radius = 8
	}
	if cfg.MinNameLength <= 0 {
		cfg.MinNameLength = 10
	}
	if cfg.MaxNameLength <= 0 {
		cfg.MaxNameLength = 150
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = keywordScore
	}

	var keywords []string
	for _, entry := range vocab.Categories {
		for _, kw := range entry.Keywords {
			keywords = append(keywords, strings.ToLower(kw))
		}
	}

	brandsLower := make([]string, 0, len(vocab.Brands))
	for _, brand := range vocab.Brands {
		brandsLower = append(brandsLower, strings.ToLower(brand))
	}

	return &ContextResolver{
		cfg:         cfg,
		scanner:     scanner,
		keywords:    keywords,
		brands:      vocab.Brands,
		brandsLower: brandsLower,
	}, nil
}

// Resolve finds the best product-name candidate for the current-price token
// at anchor. Returns nil when no line scores above the minimum — a missed
// product is preferred over a fabricated one, and the caller must skip the
// token without aborting the batch.
func (r *ContextResolver) Resolve(lines []string, anchor int) *NameContext {
	lo, hi := r.window(anchor, len(lines))

	bestScore := -1.0
	bestIdx := -1

	// Scan outward so an exact score tie resolves to the nearer line, and
	// an equidistant tie to the earlier one.
	for dist := 1; dist <= r.cfg.Radius; dist++ {
		for _, idx := range []int{anchor - dist, anchor + dist} {
			if idx < lo || idx > hi {
				continue
			}
			score, ok := r.scoreCandidate(lines[idx], dist)
			if ok && score > bestScore {
				bestScore = score
				bestIdx = idx
			}
		}
	}

	if bestIdx < 0 || bestScore < r.cfg.MinScore {
		if r.cfg.Debug {
			log.Printf("[RESOLVE] no plausible name near line %d (best %.1f)", anchor, bestScore)
		}
		return nil
	}

	ctx := &NameContext{
		Name:      lines[bestIdx],
		LineIndex: bestIdx,
		BrandHint: r.brandHint(lines[bestIdx]),
	}
	r.collectPromoHints(ctx, lines, anchor, lo, hi)

	if r.cfg.Debug {
		log.Printf("[RESOLVE] anchor %d -> %q (score %.1f)", anchor, ctx.Name, bestScore)
	}

	return ctx
}

// scoreCandidate scores one line for product-name candidacy. Price and
// discount lines are excluded outright so a "SAVE $3" line can never be
// mistaken for a product name.
func (r *ContextResolver) scoreCandidate(line string, dist int) (float64, bool) {
	if line == "" || IsPriceLike(line) {
		return 0, false
	}
	if len(line) < r.cfg.MinNameLength || len(line) > r.cfg.MaxNameLength {
		return 0, false
	}

	score := lengthScore
	if r.hasKeyword(strings.ToLower(line)) {
		score += keywordScore
	}
	score += proximityWeight * float64(r.cfg.Radius-dist) / float64(r.cfg.Radius)

	return score, true
}

func (r *ContextResolver) hasKeyword(lower string) bool {
	for _, brand := range r.brandsLower {
		if strings.Contains(lower, brand) {
			return true
		}
	}
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// brandHint returns the first configured brand alias present in the line,
// or empty when none matches.
func (r *ContextResolver) brandHint(line string) string {
	lower := strings.ToLower(line)
	for i, brand := range r.brandsLower {
		if strings.Contains(lower, brand) {
			return r.brands[i]
		}
	}
	return ""
}

// Promotional hints use tighter windows than name resolution: badge
// markers sit right beside their price in the source catalogues, and a
// wider sweep would pick up the neighboring product's badge.
const (
	badgeHintRadius  = 3
	amountHintRadius = 5
)

// collectPromoHints scans outward from the anchor and keeps the first
// occurrence of each promotional signal: WAS and SAVE amounts, half price
// and DOWN DOWN markers, percent-off, and a verbatim unit price.
func (r *ContextResolver) collectPromoHints(ctx *NameContext, lines []string, anchor, lo, hi int) {
	hintRadius := amountHintRadius
	if r.cfg.Radius < hintRadius {
		hintRadius = r.cfg.Radius
	}

	for dist := 0; dist <= hintRadius; dist++ {
		indices := []int{anchor + dist}
		if dist > 0 {
			indices = []int{anchor - dist, anchor + dist}
		}
		for _, idx := range indices {
			if idx < lo || idx > hi || lines[idx] == "" {
				continue
			}
			for _, tok := range r.scanner.Scan(lines[idx], idx) {
				switch tok.Kind {
				case domain.PriceWas:
					if ctx.Was.IsZero() {
						ctx.Was = tok.Amount
					}
				case domain.PriceSave:
					if ctx.Save.IsZero() {
						ctx.Save = tok.Amount
					}
				case domain.PricePercentOff:
					if ctx.Percent == 0 && dist <= badgeHintRadius {
						ctx.Percent = tok.Percent
					}
				case domain.PriceHalfPrice:
					if dist <= badgeHintRadius {
						ctx.HalfPrice = true
					}
				case domain.PriceUnit:
					if ctx.UnitPrice == "" {
						ctx.UnitPrice = "$" + tok.Amount.StringFixed(2) + "/" + tok.Unit
					}
				}
			}
			if dist <= badgeHintRadius && strings.Contains(strings.ToUpper(lines[idx]), "DOWN DOWN") {
				ctx.DownDown = true
			}
		}
	}
}

func (r *ContextResolver) window(anchor, n int) (int, int) {
	lo := anchor - r.cfg.Radius
	if lo < 0 {
		lo = 0
	}
	hi := anchor + r.cfg.Radius
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
