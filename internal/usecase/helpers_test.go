package usecase

import "github.com/deallens/backend/internal/domain"

// testVocabulary returns a small but representative vocabulary for
// pipeline tests
func testVocabulary() *domain.Vocabulary {
	return &domain.Vocabulary{
		DenyExact:  []string{"[TABLES FOUND]", "[END TABLES]", "Next", "$0.00"},
		DenyPrefix: []string{"--- Page", "QLD-METRO", "powered by"},
		Categories: []domain.KeywordEntry{
			{Label: "Confectionery", Keywords: []string{"chocolate", "lollies"}},
			{Label: "Snacks", Keywords: []string{"chips", "crackers", "biscuit"}},
			{Label: "Beverages", Keywords: []string{"cola", "juice", "soft drink", "coffee"}},
			{Label: "Meat & Seafood", Keywords: []string{"bacon", "chicken", "beef"}},
			{Label: "Dairy & Eggs", Keywords: []string{"milk", "cheese"}},
		},
		Brands: []string{
			"Cadbury", "Arnott's", "Coca-Cola", "Kettle", "Nescafé", "Primo", "Smith's",
		},
		Stopwords: []string{
			"and", "the", "with", "for", "per", "from", "assorted",
			"selected", "various", "pack",
		},
	}
}
