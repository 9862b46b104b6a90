package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/deallens/backend/internal/domain"
)

// Compiled patterns for name normalization
var (
	// Size/weight/pack tokens like "165g", "1.25 kg", "6 pk", "12 pack",
	// and ranged forms like "130g-190g" or "2 x 250ml"
	sizeTokenRegex = regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(x\s*\d+(\.\d+)?\s*)?(kg|g|ml|l|litre|pk|pack|ea|bunch|dz|punnet)\b(\s*-\s*\d+(\.\d+)?\s*(kg|g|ml|l|litre|pk|pack|ea|bunch|dz|punnet)\b)?`)

	punctuationToSpaceRegex = regexp.MustCompile(`[^\w\s]`)

	// Strips accents so "Nescafé" and "Nescafe" compare equal
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NameNormalizer strips size, unit, and stopword tokens from a product
// name to produce a comparable key. The key is used only for similarity
// scoring and is never written back onto the record — the original name is
// always preserved for display.
type NameNormalizer struct {
	stopwords map[string]bool
}

// NewNameNormalizer creates a name normalizer with the vocabulary stopwords
func NewNameNormalizer(vocab *domain.Vocabulary) *NameNormalizer {
	stopwords := make(map[string]bool, len(vocab.Stopwords))
	for _, word := range vocab.Stopwords {
		stopwords[strings.ToLower(word)] = true
	}
	return &NameNormalizer{stopwords: stopwords}
}

// Normalize produces the comparison key for a product name
func (n *NameNormalizer) Normalize(name string) string {
	folded, _, _ := transform.String(stripAccents, strings.ToLower(name))
	cleaned := sizeTokenRegex.ReplaceAllString(folded, " ")
	cleaned = punctuationToSpaceRegex.ReplaceAllString(cleaned, " ")

	words := strings.Fields(cleaned)
	kept := words[:0]
	for _, word := range words {
		if !n.stopwords[word] {
			kept = append(kept, word)
		}
	}

	return strings.Join(kept, " ")
}

// Keywords returns the normalized-name tokens longer than 2 characters,
// the unit of similarity scoring. Pure numeric tokens are dropped.
func (n *NameNormalizer) Keywords(name string) []string {
	var keywords []string
	for _, word := range strings.Fields(n.Normalize(name)) {
		if len(word) <= 2 || isNumeric(word) {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
