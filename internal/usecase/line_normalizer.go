package usecase

import (
	"regexp"
	"strings"

	"github.com/deallens/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	lineNumberPrefixRegex = regexp.MustCompile(`^\s*\d+\s*→\s*`)
	whitespaceRunRegex    = regexp.MustCompile(`\s+`)
)

// LineNormalizer cleans raw catalogue lines before scanning: OCR line-number
// prefixes, repeated-character noise, whitespace, and boilerplate from the
// deny-list. Pure function of one line plus the deny-list configuration.
type LineNormalizer struct {
	denyExact  map[string]bool
	denyPrefix []string
}

// NewLineNormalizer creates a line normalizer from the vocabulary deny-list
func NewLineNormalizer(vocab *domain.Vocabulary) *LineNormalizer {
	denyExact := make(map[string]bool, len(vocab.DenyExact))
	for _, pattern := range vocab.DenyExact {
		denyExact[strings.ToLower(pattern)] = true
	}

	return &LineNormalizer{
		denyExact:  denyExact,
		denyPrefix: vocab.DenyPrefix,
	}
}

// Normalize cleans a single raw line. The second return value is false when
// the line should be dropped entirely (blank, boilerplate, pagination).
func (n *LineNormalizer) Normalize(line string) (string, bool) {
	cleaned := lineNumberPrefixRegex.ReplaceAllString(line, "")
	cleaned = collapseRepeats(cleaned, 4)
	cleaned = whitespaceRunRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return "", false
	}

	if n.denyExact[strings.ToLower(cleaned)] {
		return "", false
	}

	for _, prefix := range n.denyPrefix {
		if len(cleaned) >= len(prefix) && strings.EqualFold(cleaned[:len(prefix)], prefix) {
			return "", false
		}
	}

	return cleaned, true
}

// NormalizeAll cleans every line while preserving original indices: dropped
// lines become empty strings so downstream window arithmetic stays aligned
// with the raw input. Lines are never reordered.
func (n *LineNormalizer) NormalizeAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if cleaned, ok := n.Normalize(line); ok {
			out[i] = cleaned
		}
	}
	return out
}

// collapseRepeats shortens any run of the same rune of length limit or more
// down to two occurrences. OCR output doubles glyphs ("eeaa", "$$1122") and
// occasionally smears them into longer runs; two survivors keep the doubled
// price forms recognizable for the scanner while killing the noise.
// Implemented by hand because RE2 has no backreferences.
func collapseRepeats(s string, limit int) string {
	runes := []rune(s)
	if len(runes) < limit {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	runStart := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && runes[i] == runes[runStart] {
			continue
		}
		runLen := i - runStart
		if runLen >= limit {
			runLen = 2
		}
		for j := 0; j < runLen; j++ {
			b.WriteRune(runes[runStart])
		}
		runStart = i
	}

	return b.String()
}
