package usecase

import (
	"strings"
	"unicode"

	"github.com/deallens/backend/internal/domain"
)

// Classifier runs the best-effort category and brand enrichment passes
// over built records. Pure table lookup: the first matching entry in table
// order wins, so configuration order encodes priority. The passes are
// idempotent and only ever fill fields still holding their sentinel
// defaults — a non-default value is never overwritten.
type Classifier struct {
	categories  []domain.KeywordEntry
	brands      []string
	brandsLower []string
}

// NewClassifier creates a classifier from the vocabulary tables. Empty
// tables fail here, at startup, rather than silently degrading per-record
// classification quality.
func NewClassifier(vocab *domain.Vocabulary) (*Classifier, error) {
	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	categories := make([]domain.KeywordEntry, len(vocab.Categories))
	for i, entry := range vocab.Categories {
		lowered := make([]string, len(entry.Keywords))
		for j, kw := range entry.Keywords {
			lowered[j] = strings.ToLower(kw)
		}
		categories[i] = domain.KeywordEntry{Label: entry.Label, Keywords: lowered}
	}

	brandsLower := make([]string, len(vocab.Brands))
	for i, brand := range vocab.Brands {
		brandsLower[i] = strings.ToLower(brand)
	}

	return &Classifier{
		categories:  categories,
		brands:      vocab.Brands,
		brandsLower: brandsLower,
	}, nil
}

// Enrich fills empty or sentinel brand and category fields across a batch
func (c *Classifier) Enrich(records []domain.DealRecord) {
	for i := range records {
		c.Classify(&records[i])
	}
}

// Classify fills the record's category and brand when they are still at
// their defaults. Safe to re-run.
func (c *Classifier) Classify(record *domain.DealRecord) {
	if record.Category == "" || record.Category == domain.CategoryGeneral {
		record.Category = c.Categorize(record.ProductName)
	}
	if record.Brand == "" || record.Brand == domain.BrandGeneric {
		record.Brand = c.ExtractBrand(record.ProductName)
	}
}

// Categorize returns the first category whose keyword appears in the name,
// or the sentinel default when nothing matches.
func (c *Classifier) Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range c.categories {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Label
			}
		}
	}
	return domain.CategoryGeneral
}

// ExtractBrand returns the first configured brand alias found in the name.
// With no alias match, a capitalized leading word is taken as a best-effort
// brand, otherwise the sentinel default.
func (c *Classifier) ExtractBrand(name string) string {
	lower := strings.ToLower(name)
	for i, brand := range c.brandsLower {
		if strings.Contains(lower, brand) {
			return c.brands[i]
		}
	}

	words := strings.Fields(name)
	if len(words) > 0 {
		first := []rune(words[0])
		if len(first) > 2 && unicode.IsUpper(first[0]) {
			return words[0]
		}
	}

	return domain.BrandGeneric
}
