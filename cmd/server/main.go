package main

import (
	"fmt"
	"log"
	"os"

	"github.com/deallens/backend/config"
	httpDelivery "github.com/deallens/backend/internal/delivery/http"
	"github.com/deallens/backend/internal/infrastructure/cache"
	"github.com/deallens/backend/internal/infrastructure/store"
	"github.com/deallens/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting DealLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	vocab, err := config.LoadVocabulary(cfg.Vocabulary.File)
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}
	if cfg.Vocabulary.File != "" {
		log.Printf("Vocabulary: %s (%d categories, %d brands)",
			cfg.Vocabulary.File, len(vocab.Categories), len(vocab.Brands))
	} else {
		log.Printf("Vocabulary: built-in defaults (%d categories, %d brands)",
			len(vocab.Categories), len(vocab.Brands))
	}

	extraction, err := usecase.NewExtractionService(vocab, usecase.ExtractionConfig{
		WindowRadius:  cfg.Extraction.WindowRadius,
		MinNameLength: cfg.Extraction.MinNameLength,
		MaxNameLength: cfg.Extraction.MaxNameLength,
		MinNameScore:  cfg.Extraction.MinNameScore,
		PriceCeiling:  cfg.Extraction.PriceCeiling,
		Debug:         cfg.Extraction.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to build extraction pipeline: %v", err)
	}

	normalizer := usecase.NewNameNormalizer(vocab)
	classifier, err := usecase.NewClassifier(vocab)
	if err != nil {
		log.Fatalf("Failed to build classifier: %v", err)
	}

	scorer := usecase.NewScorer(usecase.ScorerConfig{
		BrandBonus:       cfg.Matching.BrandBonus,
		UseSequenceRatio: cfg.Matching.UseSequenceRatio,
	}, normalizer, classifier)

	matching := usecase.NewMatchingService(usecase.MatchingConfig{
		Threshold: cfg.Matching.Threshold,
		Debug:     cfg.Matching.Debug,
	}, scorer)

	log.Printf("Matching: threshold=%.2f, sequence_ratio=%v",
		cfg.Matching.Threshold, cfg.Matching.UseSequenceRatio)

	catalogueStore, err := store.NewJSONStore(cfg.Store.Dir)
	if err != nil {
		log.Fatalf("Failed to open catalogue store: %v", err)
	}
	log.Printf("Store: %s", cfg.Store.Dir)

	reportCache := cache.NewMemoryCache(cfg.Cache.TTL)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	handler := httpDelivery.NewHandler(extraction, matching, catalogueStore, reportCache)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
