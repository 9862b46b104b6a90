package usecase

import (
	"errors"
	"testing"

	"github.com/deallens/backend/internal/domain"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(testVocabulary())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return c
}

func TestNewClassifier_RejectsEmptyVocabulary(t *testing.T) {
	_, err := NewClassifier(&domain.Vocabulary{})
	if !errors.Is(err, domain.ErrEmptyVocabulary) {
		t.Errorf("err = %v, want ErrEmptyVocabulary", err)
	}
}

func TestCategorize(t *testing.T) {
	c := newTestClassifier(t)

	testCases := []struct {
		name string
		want string
	}{
		{"Cadbury Dairy Milk Chocolate Block 180g", "Confectionery"},
		{"Arnott's Shapes Crackers BBQ 175g", "Snacks"},
		{"Coca-Cola Soft Drink 1.25L", "Beverages"},
		{"Primo Rindless Short Cut Bacon 750g", "Meat & Seafood"},
		{"BULLA CREAMY CLASSICS VANILLA", "General"},
		{"fresh chicken breast fillets", "Meat & Seafood"},
	}

	for _, tc := range testCases {
		if got := c.Categorize(tc.name); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCategorize_TableOrderEncodesPriority(t *testing.T) {
	c := newTestClassifier(t)

	// "Chocolate" hits Confectionery before "Milk" can hit Dairy & Eggs.
	if got := c.Categorize("Chocolate Milk 600mL"); got != "Confectionery" {
		t.Errorf("Categorize = %q, want Confectionery by table order", got)
	}
}

func TestExtractBrand(t *testing.T) {
	c := newTestClassifier(t)

	testCases := []struct {
		name string
		want string
	}{
		{"cadbury dairy milk block", "Cadbury"},
		{"Arnott's Tim Tam Biscuits 165g", "Arnott's"},
		{"Nescafe Gold Instant 100g", "Nescafe"},
		{"Bega Tasty Cheese Block 500g", "Bega"},
		{"fresh tomatoes", "Generic"},
		{"A1 Steak Sauce", "Generic"},
	}

	for _, tc := range testCases {
		if got := c.ExtractBrand(tc.name); got != tc.want {
			t.Errorf("ExtractBrand(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClassify_OnlyFillsDefaults(t *testing.T) {
	c := newTestClassifier(t)

	record := domain.DealRecord{
		ProductName: "Cadbury Dairy Milk Chocolate Block 180g",
		Brand:       "House Brand",
		Category:    "Clearance",
	}
	c.Classify(&record)
	if record.Brand != "House Brand" || record.Category != "Clearance" {
		t.Errorf("Classify overwrote non-default fields: %+v", record)
	}

	record = domain.DealRecord{
		ProductName: "Cadbury Dairy Milk Chocolate Block 180g",
		Brand:       domain.BrandGeneric,
		Category:    domain.CategoryGeneral,
	}
	c.Classify(&record)
	if record.Brand != "Cadbury" {
		t.Errorf("brand = %q, want sentinel default replaced with Cadbury", record.Brand)
	}
	if record.Category != "Confectionery" {
		t.Errorf("category = %q, want sentinel default replaced with Confectionery", record.Category)
	}
}

func TestEnrich_IsIdempotent(t *testing.T) {
	c := newTestClassifier(t)

	records := []domain.DealRecord{
		{ProductName: "Cadbury Dairy Milk Chocolate Block 180g"},
		{ProductName: "fresh tomatoes"},
	}

	c.Enrich(records)
	first := make([]domain.DealRecord, len(records))
	copy(first, records)

	c.Enrich(records)
	for i := range records {
		if records[i].Brand != first[i].Brand || records[i].Category != first[i].Category {
			t.Errorf("record %d changed on re-run: %+v vs %+v", i, records[i], first[i])
		}
	}
	if records[1].Brand != domain.BrandGeneric || records[1].Category != domain.CategoryGeneral {
		t.Errorf("unmatched record = %+v, want sentinel defaults", records[1])
	}
}
