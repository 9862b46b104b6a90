package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/deallens/backend/internal/domain"
)

var retailerNameRegex = regexp.MustCompile(`[^a-z0-9]+`)

// JSONStore persists catalogues and comparison reports as JSON files, one
// catalogue file per retailer. Records round-trip through the same field
// names the API serves, so downstream rendering and translation layers can
// consume the files without further transformation.
type JSONStore struct {
	dir string
}

// NewJSONStore creates a store rooted at dir, creating it if needed
func NewJSONStore(dir string) (*JSONStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// SaveCatalogue writes one retailer's records, replacing any previous file
func (s *JSONStore) SaveCatalogue(ctx context.Context, retailer string, records []domain.DealRecord) error {
	if retailer == "" {
		return domain.ErrInvalidRequest
	}
	return s.writeJSON(s.cataloguePath(retailer), records)
}

// LoadCatalogue reads one retailer's records. Returns ErrCatalogueNotFound
// when the retailer has never been saved.
func (s *JSONStore) LoadCatalogue(ctx context.Context, retailer string) ([]domain.DealRecord, error) {
	data, err := os.ReadFile(s.cataloguePath(retailer))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogueNotFound, retailer)
		}
		return nil, fmt.Errorf("read catalogue: %w", err)
	}

	var records []domain.DealRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalogue %s: %w", retailer, err)
	}

	return records, nil
}

// SaveReport persists a comparison report, assigning an ID when missing
func (s *JSONStore) SaveReport(ctx context.Context, report *domain.ComparisonReport) error {
	if report == nil {
		return domain.ErrInvalidRequest
	}
	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	name := fmt.Sprintf("report_%s.json", report.ID)
	return s.writeJSON(filepath.Join(s.dir, name), report)
}

// writeJSON writes via a temp file and rename so a crash mid-write never
// leaves a truncated catalogue behind.
func (s *JSONStore) writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	return nil
}

func (s *JSONStore) cataloguePath(retailer string) string {
	slug := retailerNameRegex.ReplaceAllString(strings.ToLower(retailer), "_")
	return filepath.Join(s.dir, fmt.Sprintf("%s_catalogue.json", strings.Trim(slug, "_")))
}
