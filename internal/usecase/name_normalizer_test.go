package usecase

import (
	"reflect"
	"testing"
)

func TestNameNormalize(t *testing.T) {
	n := NewNameNormalizer(testVocabulary())

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips size token",
			input: "Cadbury Dairy Milk Chocolate Block 180g",
			want:  "cadbury dairy milk chocolate block",
		},
		{
			name:  "strips ranged size token",
			input: "Cadbury Medium Bars 130g-190g",
			want:  "cadbury medium bars",
		},
		{
			name:  "strips multi-pack size token",
			input: "Coca-Cola Cans 2 x 250mL",
			want:  "coca cola cans",
		},
		{
			name:  "strips litre volume",
			input: "Coca-Cola Soft Drink 1.25L",
			want:  "coca cola soft drink",
		},
		{
			name:  "folds accents",
			input: "Nescafé Blend 43 Instant Coffee 150g",
			want:  "nescafe blend 43 instant coffee",
		},
		{
			name:  "punctuation becomes a word break",
			input: "Arnott's Tim Tam Original",
			want:  "arnott s tim tam original",
		},
		{
			name:  "drops stopwords",
			input: "Kettle Chips Assorted Flavours Pack",
			want:  "kettle chips flavours",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	n := NewNameNormalizer(testVocabulary())

	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "drops numeric and short tokens",
			input: "Nescafé Blend 43 Instant Coffee 150g",
			want:  []string{"nescafe", "blend", "instant", "coffee"},
		},
		{
			name:  "apostrophe fragment dropped",
			input: "Arnott's Tim Tam Original 200g",
			want:  []string{"arnott", "tim", "tam", "original"},
		},
		{
			name:  "nothing left",
			input: "2 x 40g",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Keywords(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Keywords(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
