package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/deallens/backend/internal/domain"
)

var two = decimal.NewFromInt(2)

// RecordBuilder turns resolved (price token, name context) pairs into deal
// records. The ID counter is scoped to one builder instance — one
// extraction batch — never process-wide, so repeated runs in the same
// process don't leak state. The counter only advances on success, so IDs
// of rejected candidates are never visible.
type RecordBuilder struct {
	retailer string
	prefix   string
	counter  int
	debug    bool
}

// NewRecordBuilder creates a builder for one retailer's extraction batch
func NewRecordBuilder(retailer string, debug bool) *RecordBuilder {
	return &RecordBuilder{
		retailer: retailer,
		prefix:   idPrefix(retailer),
		debug:    debug,
	}
}

// Build validates and assembles one deal record. Rejections are an
// expected, frequent outcome on noisy input, not an error condition: the
// caller logs and continues.
func (b *RecordBuilder) Build(tok domain.PriceToken, ctx *NameContext) (*domain.DealRecord, error) {
	if ctx == nil || strings.TrimSpace(ctx.Name) == "" {
		return nil, domain.ErrNoProductName
	}
	if tok.Kind != domain.PriceCurrent || !tok.Amount.IsPositive() {
		return nil, domain.ErrNoCurrentPrice
	}

	current := tok.Amount
	original, savings := derivePrices(current, ctx)

	b.counter++
	record := &domain.DealRecord{
		ID:            fmt.Sprintf("%s%03d", b.prefix, b.counter),
		Retailer:      b.retailer,
		ProductName:   ctx.Name,
		Brand:         ctx.BrandHint,
		CurrentPrice:  current,
		OriginalPrice: original,
		Savings:       savings,
		SpecialType:   specialType(ctx, savings),
		PercentOff:    ctx.Percent,
		UnitPrice:     ctx.UnitPrice,
	}

	if b.debug {
		log.Printf("[BUILD] %s %q current=%s original=%s savings=%s type=%s",
			record.ID, record.ProductName, current, original, savings, record.SpecialType)
	}

	return record, nil
}

// Count returns the number of records built so far
func (b *RecordBuilder) Count() int {
	return b.counter
}

// derivePrices applies the single-direction price derivation rule. An
// explicit WAS wins, then an explicit SAVE, then half-price arithmetic;
// savings is always recomputed from the chosen original so the invariant
// originalPrice >= currentPrice, savings == originalPrice - currentPrice
// holds on every emitted record. A WAS below the current price is OCR
// noise and is ignored rather than emitted as a negative discount.
func derivePrices(current decimal.Decimal, ctx *NameContext) (original, savings decimal.Decimal) {
	switch {
	case ctx.Was.IsPositive():
		original = ctx.Was
	case ctx.Save.IsPositive():
		original = current.Add(ctx.Save)
	case ctx.HalfPrice:
		original = current.Mul(two)
	default:
		original = current
	}

	if original.LessThan(current) {
		original = current
	}

	return original, original.Sub(current)
}

// specialType maps the promotional context onto the fixed vocabulary.
// Marker precedence follows the source catalogues: an explicit half-price
// or DOWN DOWN badge outranks a plain SAVE/WAS special.
func specialType(ctx *NameContext, savings decimal.Decimal) domain.SpecialType {
	switch {
	case ctx.HalfPrice:
		return domain.SpecialHalfPrice
	case ctx.DownDown:
		return domain.SpecialDownDown
	case ctx.Percent > 0:
		return domain.SpecialPercentOff
	case savings.IsPositive():
		return domain.SpecialSave
	default:
		return domain.SpecialRegular
	}
}

// idPrefix derives a short retailer prefix for record IDs ("Coles" -> "CO")
func idPrefix(retailer string) string {
	letters := make([]rune, 0, 2)
	for _, r := range retailer {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters = append(letters, r)
		}
		if len(letters) == 2 {
			break
		}
	}
	if len(letters) == 0 {
		return "XX"
	}
	return strings.ToUpper(string(letters))
}
