package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmptyVocabulary is returned when a keyword table required for
	// classification or name resolution is missing or empty
	ErrEmptyVocabulary = errors.New("vocabulary table is empty")

	// ErrNoProductName is returned by the record builder when no product
	// name could be resolved for a price token
	ErrNoProductName = errors.New("no product name resolved")

	// ErrNoCurrentPrice is returned by the record builder when the current
	// price is missing or not positive
	ErrNoCurrentPrice = errors.New("no current price resolved")

	// ErrCatalogueNotFound is returned when a retailer catalogue does not
	// exist in the store
	ErrCatalogueNotFound = errors.New("catalogue not found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
