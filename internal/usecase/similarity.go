package usecase

import (
	"github.com/deallens/backend/internal/domain"
)

// ScorerConfig holds configuration for the similarity scorer
type ScorerConfig struct {
	// BrandBonus is added when both names independently resolve to the
	// same non-default brand. Zero or negative falls back to the default.
	BrandBonus float64

	// UseSequenceRatio switches the base score from token-set containment
	// to a character-sequence (edit distance) ratio over the normalized
	// names, a stronger signal on short names with reordered tokens.
	UseSequenceRatio bool
}

// Scorer computes a similarity score in [0,1] between two product names.
type Scorer struct {
	normalizer *NameNormalizer
	classifier *Classifier
	brandBonus float64
	useSeq     bool
}

// NewScorer creates a similarity scorer
func NewScorer(cfg ScorerConfig, normalizer *NameNormalizer, classifier *Classifier) *Scorer {
	bonus := cfg.BrandBonus
	if bonus <= 0 {
		bonus = 0.2
	}
	return &Scorer{
		normalizer: normalizer,
		classifier: classifier,
		brandBonus: bonus,
		useSeq:     cfg.UseSequenceRatio,
	}
}

// Score returns the similarity between two product names. Identical
// normalized names score 1.0; names sharing no keywords score 0.0. Either
// keyword set being empty yields 0 so vacuous matches can't qualify.
func (s *Scorer) Score(nameA, nameB string) float64 {
	keywordsA := s.normalizer.Keywords(nameA)
	keywordsB := s.normalizer.Keywords(nameB)

	if len(keywordsA) == 0 || len(keywordsB) == 0 {
		return 0
	}

	var score float64
	if s.useSeq {
		score = sequenceRatio(s.normalizer.Normalize(nameA), s.normalizer.Normalize(nameB))
	} else {
		score = containmentRatio(keywordsA, keywordsB)
	}

	if score > 0 {
		brandA := s.classifier.ExtractBrand(nameA)
		brandB := s.classifier.ExtractBrand(nameB)
		if brandA != domain.BrandGeneric && brandA == brandB {
			score += s.brandBonus
		}
	}

	if score > 1 {
		score = 1
	}
	return score
}

// containmentRatio is |common keywords| / max(|keywordsA|, |keywordsB|)
func containmentRatio(keywordsA, keywordsB []string) float64 {
	set := make(map[string]bool, len(keywordsA))
	for _, kw := range keywordsA {
		set[kw] = true
	}

	common := 0
	seen := make(map[string]bool, len(keywordsB))
	for _, kw := range keywordsB {
		if set[kw] && !seen[kw] {
			common++
			seen[kw] = true
		}
	}

	max := len(keywordsA)
	if len(keywordsB) > max {
		max = len(keywordsB)
	}
	return float64(common) / float64(max)
}

// sequenceRatio converts edit distance into a similarity in [0,1]
func sequenceRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	max := len([]rune(a))
	if n := len([]rune(b)); n > max {
		max = n
	}
	return 1 - float64(levenshteinDistance(a, b))/float64(max)
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Two rows instead of the full matrix
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
