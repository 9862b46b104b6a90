package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/deallens/backend/internal/domain"
)

// Recognizer patterns, compiled once. Recognizer precedence is fixed:
// SAVE, WAS, unit price, half price, percent off, then any bare currency
// amount not already consumed by an earlier recognizer.
var (
	saveRegex = regexp.MustCompile(`(?i)\bSAVE\s+\$(\d+(?:,\d{3})*(?:[.,]\d{1,2})?)`)
	wasRegex  = regexp.MustCompile(`(?i)\bWAS\s+\$(\d+(?:,\d{3})*(?:[.,]\d{1,2})?)`)
	unitRegex = regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*per\s*(kg|100\s*g|100\s*m?L|litre|each)`)
	halfRegex = regexp.MustCompile(`(?i)\b1\s*/\s*2\s*PRICE\b|\bHALF\s*PRICE\b`)
	pctRegex  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*%\s*OFF\b`)

	// OCR-doubled price forms like "$$17", "$$3225" or "$$17 00". The
	// original catalogue dumps double every glyph; with three or more
	// digits the last two are the cents.
	doubledPriceRegex = regexp.MustCompile(`\$\$\s?(\d{1,4})(?:\s+(\d{2})\b)?`)

	barePriceRegex = regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
)

// PriceScanner scans normalized catalogue lines for monetary tokens.
// Malformed amounts and amounts above the sanity ceiling are discarded,
// never coerced — a missing token beats a fabricated one.
type PriceScanner struct {
	ceiling decimal.Decimal
}

// NewPriceScanner creates a price scanner with the given sanity ceiling.
// A non-positive ceiling falls back to the default of $100,000.
func NewPriceScanner(ceiling float64) *PriceScanner {
	if ceiling <= 0 {
		ceiling = 100000
	}
	return &PriceScanner{ceiling: decimal.NewFromFloat(ceiling)}
}

// Scan returns zero or more price tokens found on one line. Multiple
// sub-patterns may fire on the same line; each consumes its span so a
// "WAS $6" amount never doubles as a bare current-price candidate.
func (s *PriceScanner) Scan(line string, index int) []domain.PriceToken {
	if line == "" || !strings.ContainsAny(line, "$%/Hh") {
		return nil
	}

	var tokens []domain.PriceToken
	var consumed [][2]int

	for _, m := range saveRegex.FindAllStringSubmatchIndex(line, -1) {
		if amount, ok := s.parseAmount(line[m[2]:m[3]]); ok {
			tokens = append(tokens, domain.PriceToken{Kind: domain.PriceSave, Amount: amount, LineIndex: index})
		}
		consumed = append(consumed, [2]int{m[0], m[1]})
	}

	for _, m := range wasRegex.FindAllStringSubmatchIndex(line, -1) {
		if amount, ok := s.parseAmount(line[m[2]:m[3]]); ok {
			tokens = append(tokens, domain.PriceToken{Kind: domain.PriceWas, Amount: amount, LineIndex: index})
		}
		consumed = append(consumed, [2]int{m[0], m[1]})
	}

	for _, m := range unitRegex.FindAllStringSubmatchIndex(line, -1) {
		// Unit price is reported verbatim, never converted: source units
		// vary in ways that are unsafe to infer.
		if amount, ok := s.parseAmount(line[m[2]:m[3]]); ok {
			tokens = append(tokens, domain.PriceToken{
				Kind:      domain.PriceUnit,
				Amount:    amount,
				Unit:      strings.ToLower(whitespaceRunRegex.ReplaceAllString(line[m[4]:m[5]], "")),
				LineIndex: index,
			})
		}
		consumed = append(consumed, [2]int{m[0], m[1]})
	}

	if halfRegex.MatchString(line) {
		// Amount absent: the builder computes it as half of whatever
		// current price is later resolved.
		tokens = append(tokens, domain.PriceToken{Kind: domain.PriceHalfPrice, LineIndex: index})
	}

	for _, m := range pctRegex.FindAllStringSubmatchIndex(line, -1) {
		pct, err := strconv.Atoi(line[m[2]:m[3]])
		if err == nil && pct > 0 && pct < 100 {
			tokens = append(tokens, domain.PriceToken{Kind: domain.PricePercentOff, Percent: pct, LineIndex: index})
		}
		consumed = append(consumed, [2]int{m[0], m[1]})
	}

	for _, m := range doubledPriceRegex.FindAllStringSubmatchIndex(line, -1) {
		if overlaps(consumed, m[0], m[1]) {
			continue
		}
		if amount, ok := s.parseDoubledAmount(line, m); ok {
			tokens = append(tokens, domain.PriceToken{Kind: domain.PriceCurrent, Amount: amount, LineIndex: index})
		}
		consumed = append(consumed, [2]int{m[0], m[1]})
	}

	for _, m := range barePriceRegex.FindAllStringSubmatchIndex(line, -1) {
		if overlaps(consumed, m[0], m[1]) {
			continue
		}
		// Skip the inner match of a doubled "$$" form
		if m[0] > 0 && line[m[0]-1] == '$' {
			continue
		}
		if amount, ok := s.parseAmount(line[m[2]:m[3]]); ok {
			tokens = append(tokens, domain.PriceToken{Kind: domain.PriceCurrent, Amount: amount, LineIndex: index})
		}
	}

	return tokens
}

// parseAmount converts numeric text into a two-decimal amount. Returns
// false for unparseable or out-of-range values. A comma is either a
// thousands separator ("1,234.56") or an OCR-mangled decimal point
// ("1,50" is $1.50, not $150): only a trailing three-digit group with no
// decimal point already present is treated as thousands.
func (s *PriceScanner) parseAmount(text string) (decimal.Decimal, bool) {
	if i := strings.LastIndexByte(text, ','); i >= 0 {
		if strings.ContainsRune(text, '.') || len(text)-i == 4 {
			text = strings.ReplaceAll(text, ",", "")
		} else {
			text = strings.ReplaceAll(text[:i], ",", "") + "." + text[i+1:]
		}
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if amount.IsNegative() || amount.GreaterThan(s.ceiling) {
		return decimal.Decimal{}, false
	}
	return amount.Round(2), true
}

// parseDoubledAmount decodes OCR-doubled prices. With three or more digits
// the trailing two are cents ("$$3225" is $32.25); shorter forms take the
// optional separate cents group ("$$17 00" is $17.00).
func (s *PriceScanner) parseDoubledAmount(line string, m []int) (decimal.Decimal, bool) {
	digits := line[m[2]:m[3]]

	var text string
	switch {
	case len(digits) >= 3:
		text = digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	case m[4] >= 0:
		text = digits + "." + line[m[4]:m[5]]
	default:
		text = digits
	}

	return s.parseAmount(text)
}

// IsPriceLike reports whether a line matches any price or discount pattern.
// The context resolver uses it to keep such lines out of product-name
// candidacy.
func IsPriceLike(line string) bool {
	return saveRegex.MatchString(line) ||
		wasRegex.MatchString(line) ||
		unitRegex.MatchString(line) ||
		halfRegex.MatchString(line) ||
		pctRegex.MatchString(line) ||
		doubledPriceRegex.MatchString(line) ||
		barePriceRegex.MatchString(line)
}

// overlaps reports whether [start, end) intersects any consumed span
func overlaps(spans [][2]int, start, end int) bool {
	for _, span := range spans {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}
