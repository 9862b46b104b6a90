package domain

import "context"

// CatalogueStore defines the interface for persisting extracted catalogues
// and comparison reports. The core never touches the filesystem directly.
type CatalogueStore interface {
	SaveCatalogue(ctx context.Context, retailer string, records []DealRecord) error
	LoadCatalogue(ctx context.Context, retailer string) ([]DealRecord, error)
	SaveReport(ctx context.Context, report *ComparisonReport) error
}

// ReportCache defines the interface for caching comparison reports so
// repeated compare requests over unchanged catalogues skip the O(A×B) run.
type ReportCache interface {
	Get(ctx context.Context, key string) (*ComparisonReport, error)
	Set(ctx context.Context, key string, report *ComparisonReport) error
	Delete(ctx context.Context, key string) error
}
