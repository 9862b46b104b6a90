package domain

// KeywordEntry maps an ordered list of keywords to a label. Table order
// encodes priority: the first entry whose keyword matches wins, so more
// specific entries must precede generic ones in configuration.
type KeywordEntry struct {
	Label    string   `json:"label" mapstructure:"label"`
	Keywords []string `json:"keywords" mapstructure:"keywords"`
}

// Vocabulary is the externally supplied mapping data the extraction
// pipeline runs on: boilerplate deny patterns, category keyword tables,
// brand aliases, and similarity stopwords. It is data, not logic — new
// retailer templates must not require code changes.
type Vocabulary struct {
	DenyExact  []string       `json:"denyExact" mapstructure:"deny_exact"`
	DenyPrefix []string       `json:"denyPrefix" mapstructure:"deny_prefix"`
	Categories []KeywordEntry `json:"categories" mapstructure:"categories"`
	Brands     []string       `json:"brands" mapstructure:"brands"`
	Stopwords  []string       `json:"stopwords" mapstructure:"stopwords"`
}

// Validate checks that the tables classification depends on are present.
// Missing tables are a caller mistake and must fail at startup, not
// silently degrade per-record quality.
func (v *Vocabulary) Validate() error {
	if v == nil || len(v.Categories) == 0 || len(v.Brands) == 0 {
		return ErrEmptyVocabulary
	}
	for _, entry := range v.Categories {
		if entry.Label == "" || len(entry.Keywords) == 0 {
			return ErrEmptyVocabulary
		}
	}
	return nil
}
