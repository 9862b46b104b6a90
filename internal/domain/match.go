package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side identifies which retailer in a comparison is cheaper.
type Side string

const (
	SideA   Side = "A"
	SideB   Side = "B"
	SideTie Side = "Tie"
)

// MatchResult pairs two deal records from different retailers believed to
// denote the same underlying product. Immutable once created; a record
// appears in at most one result per matching run.
type MatchResult struct {
	ProductA        DealRecord      `json:"productA"`
	ProductB        DealRecord      `json:"productB"`
	Similarity      float64         `json:"similarity"`
	CheaperSide     Side            `json:"cheaperSide"`
	PriceDifference decimal.Decimal `json:"priceDifference"`
}

// ExtractionStats summarizes one extraction run so operators can gauge
// extraction quality against the raw input.
type ExtractionStats struct {
	LinesScanned   int `json:"linesScanned"`
	LinesKept      int `json:"linesKept"`
	PriceTokens    int `json:"priceTokens"`
	Candidates     int `json:"candidates"`
	Records        int `json:"records"`
	Specials       int `json:"specials"`
	SkippedNoName  int `json:"skippedNoName"`
	SkippedInvalid int `json:"skippedInvalid"`
}

// ComparisonReport is the output of one cross-retailer matching run.
type ComparisonReport struct {
	ID              string          `json:"id"`
	RetailerA       string          `json:"retailerA"`
	RetailerB       string          `json:"retailerB"`
	CandidatesA     int             `json:"candidatesA"`
	CandidatesB     int             `json:"candidatesB"`
	Matches         []MatchResult   `json:"matches"`
	ACheaperCount   int             `json:"aCheaperCount"`
	BCheaperCount   int             `json:"bCheaperCount"`
	TieCount        int             `json:"tieCount"`
	TotalSavingsA   decimal.Decimal `json:"totalSavingsA"`
	TotalSavingsB   decimal.Decimal `json:"totalSavingsB"`
	AvgDifference   decimal.Decimal `json:"avgDifference"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}
