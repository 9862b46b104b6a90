package domain

import "github.com/shopspring/decimal"

// PriceKind identifies which price pattern produced a token.
type PriceKind string

// Price token kinds, in recognizer precedence order.
const (
	PriceSave       PriceKind = "save"
	PriceWas        PriceKind = "was"
	PriceUnit       PriceKind = "unit"
	PriceHalfPrice  PriceKind = "half_price"
	PricePercentOff PriceKind = "percent_off"
	PriceCurrent    PriceKind = "current"
)

// PriceToken is a single monetary token detected on a catalogue line.
// A line may yield several tokens. Amount is zero for half-price markers
// (the builder derives the amount from the resolved current price) and for
// percent-off tokens, which carry Percent instead.
type PriceToken struct {
	Kind      PriceKind       `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Percent   int             `json:"percent,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	LineIndex int             `json:"lineIndex"`
}

// SpecialType tags the nature of a discount with a fixed vocabulary so
// downstream comparison and badge rendering stay well-defined.
type SpecialType string

const (
	SpecialRegular    SpecialType = "Regular Price"
	SpecialHalfPrice  SpecialType = "1/2 Price"
	SpecialPercentOff SpecialType = "% Off"
	SpecialSave       SpecialType = "Special"
	SpecialDownDown   SpecialType = "Down Down"
)

// Sentinel defaults for enrichment passes. Brand and category are never
// empty on an emitted record so downstream comparisons stay total.
const (
	BrandGeneric    = "Generic"
	CategoryGeneral = "General"
)

// DealRecord is a structured product+price entry extracted from catalogue
// text. Created once by the record builder; only the brand and category
// fields may be filled afterwards, and only while they still hold their
// sentinel defaults.
type DealRecord struct {
	ID            string          `json:"productID"`
	Retailer      string          `json:"retailer"`
	ProductName   string          `json:"productName"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Savings       decimal.Decimal `json:"savings"`
	SpecialType   SpecialType     `json:"specialType"`
	PercentOff    int             `json:"percentOff,omitempty"`
	UnitPrice     string          `json:"unitPrice,omitempty"`
}

// OnSpecial reports whether the record carries any discount tag.
func (r DealRecord) OnSpecial() bool {
	return r.SpecialType != "" && r.SpecialType != SpecialRegular
}

// DiscountPercentage returns the discount relative to the original price,
// rounded to one decimal place. Zero when there is no discount.
func (r DealRecord) DiscountPercentage() float64 {
	if !r.OriginalPrice.IsPositive() || !r.CurrentPrice.IsPositive() {
		return 0
	}
	if r.OriginalPrice.LessThanOrEqual(r.CurrentPrice) {
		return 0
	}
	pct := r.OriginalPrice.Sub(r.CurrentPrice).
		Div(r.OriginalPrice).
		Mul(decimal.NewFromInt(100))
	f, _ := pct.Round(1).Float64()
	return f
}
