package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/deallens/backend/internal/domain"
)

// LoadVocabulary loads the keyword tables from the given YAML file, or
// returns the built-in default vocabulary when path is empty. A file with
// missing or empty tables is a startup error, never a silent fallback.
func LoadVocabulary(path string) (*domain.Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading vocabulary file %s: %w", path, err)
	}

	var vocab domain.Vocabulary
	if err := v.Unmarshal(&vocab); err != nil {
		return nil, fmt.Errorf("unable to decode vocabulary: %w", err)
	}

	if err := vocab.Validate(); err != nil {
		return nil, fmt.Errorf("vocabulary file %s: %w", path, err)
	}

	return &vocab, nil
}

// DefaultVocabulary returns the built-in tables for Australian supermarket
// catalogues. Category entries are ordered most-specific first because the
// classifier commits to the first match.
func DefaultVocabulary() *domain.Vocabulary {
	return &domain.Vocabulary{
		DenyExact: []string{
			"Previous", "Next", "Back to top", "Home", "Pages", "Product List",
			"Categories", "Bookmarks", "Customer Service", "Help & Support",
			"Contact Us", "Feedback", "Stores", "Help", "Delivery", "Pick up",
			"[TABLES FOUND]", "[END TABLES]", "$0.00", "undefined",
		},
		DenyPrefix: []string{
			"--- Page", "=== PAGE", "URL:", "Scraped at:", "powered by",
			"QLD-METRO", "FP-QLD", "See page", "Serving suggestion",
			"Selected stores", "While stocks last", "Home /",
		},
		Categories: []domain.KeywordEntry{
			{Label: "Meat & Seafood", Keywords: []string{
				"beef", "chicken", "pork", "lamb", "salmon", "prawns", "fish",
				"bacon", "ham", "steak", "mince", "sausage",
			}},
			{Label: "Dairy & Eggs", Keywords: []string{
				"milk", "cheese", "yogurt", "yoghurt", "butter", "cream", "eggs",
			}},
			{Label: "Bakery", Keywords: []string{
				"bread", "roll", "bagel", "muffin", "cake", "pastry", "biscuit",
				"cookie",
			}},
			{Label: "Fresh Produce", Keywords: []string{
				"apple", "banana", "potato", "onion", "carrot", "lettuce",
				"tomato", "capsicum", "cucumber", "kiwifruit", "raspberries",
				"blueberries", "pears", "asparagus", "organic",
			}},
			{Label: "Confectionery", Keywords: []string{
				"chocolate", "lollies", "candy",
			}},
			{Label: "Snacks", Keywords: []string{
				"chips", "crackers", "nuts", "popcorn", "pretzels", "shapes",
			}},
			{Label: "Beverages", Keywords: []string{
				"soft drink", "juice", "water", "coffee", "tea", "cola", "pepsi",
				"energy drink", "drink",
			}},
			{Label: "Frozen", Keywords: []string{
				"ice cream", "frozen", "pizza",
			}},
			{Label: "Pantry", Keywords: []string{
				"rice", "pasta", "sauce", "oil", "stock", "gravy", "beans",
				"tuna", "flour", "sugar", "cereal", "noodle",
			}},
			{Label: "Health & Beauty", Keywords: []string{
				"shampoo", "soap", "toothpaste", "deodorant", "lotion",
				"conditioner", "sunscreen",
			}},
			{Label: "Vitamins", Keywords: []string{
				"vitamin", "magnesium", "calcium", "supplement", "tablets",
				"capsules", "fish oil",
			}},
			{Label: "Baby & Child", Keywords: []string{
				"nappies", "nappy", "baby", "wipes", "formula",
			}},
			{Label: "Household", Keywords: []string{
				"toilet paper", "tissues", "cleaning", "detergent", "batteries",
				"disinfectant",
			}},
			{Label: "Pet", Keywords: []string{
				"dog food", "cat food", "pet",
			}},
		},
		Brands: []string{
			"Coca-Cola", "Coles", "Woolworths", "Cadbury", "Colgate", "Huggies",
			"Kettle", "Pepsi", "Arnott's", "Kellogg's", "Uncle Tobys", "McCain",
			"Primo", "Sunrice", "Campbell's", "Nivea", "Dove", "Palmolive",
			"Dettol", "Nature's Way", "Blackmores", "Swisse", "Smith's",
			"Allen's", "Nestlé", "Nescafé", "Milo", "Peters", "Streets",
			"Gippsland", "Lindt", "Ferrero", "Toblerone", "Maltesers", "Mars",
			"Moccona", "Lipton", "Oreo", "John West", "SPC", "MasterFoods",
			"Four'N Twenty", "Golden Circle", "Vegemite", "Ben & Jerry's",
			"Connoisseur", "Magnum", "Doritos", "Pringles", "Berocca",
			"Betty Crocker", "Bonne Maman", "Quilton", "Sorbent", "Whiskas",
			"Pedigree", "Pantene", "L'Oréal", "Tim Tam", "Weet-Bix",
		},
		Stopwords: []string{
			"and", "the", "with", "for", "per", "from", "assorted", "selected",
			"various", "pack", "varieties", "variety", "each", "or",
		},
	}
}
