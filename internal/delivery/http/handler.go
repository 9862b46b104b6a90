package http

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deallens/backend/internal/domain"
	"github.com/deallens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extraction *usecase.ExtractionService
	matching   *usecase.MatchingService
	store      domain.CatalogueStore
	cache      domain.ReportCache
}

// NewHandler creates a new HTTP handler
func NewHandler(
	extraction *usecase.ExtractionService,
	matching *usecase.MatchingService,
	store domain.CatalogueStore,
	cache domain.ReportCache,
) *Handler {
	return &Handler{
		extraction: extraction,
		matching:   matching,
		store:      store,
		cache:      cache,
	}
}

// extractRequest is the payload for catalogue extraction
type extractRequest struct {
	Retailer string   `json:"retailer" binding:"required"`
	Lines    []string `json:"lines" binding:"required"`
	Persist  bool     `json:"persist"`
}

// compareRequest is the payload for cross-retailer comparison. Record
// lists are optional; when omitted the stored catalogues are used.
type compareRequest struct {
	RetailerA string              `json:"retailerA" binding:"required"`
	RetailerB string              `json:"retailerB" binding:"required"`
	RecordsA  []domain.DealRecord `json:"recordsA"`
	RecordsB  []domain.DealRecord `json:"recordsB"`
	Persist   bool                `json:"persist"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "deallens-backend",
		"version": "1.0.0",
	})
}

// ExtractCatalogue runs the extraction pipeline over raw catalogue lines
// and returns the records alongside the run's quality counters.
func (h *Handler) ExtractCatalogue(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, stats, err := h.extraction.Extract(c.Request.Context(), req.Lines, req.Retailer)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if req.Persist {
		if err := h.store.SaveCatalogue(c.Request.Context(), req.Retailer, records); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"retailer": req.Retailer,
		"stats":    stats,
		"records":  records,
	})
}

// CompareCatalogues matches two catalogues and returns the comparison
// report. Stored catalogues are used when record lists are not supplied;
// those runs are served from cache when the catalogues are unchanged.
func (h *Handler) CompareCatalogues(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	recordsA := req.RecordsA
	if recordsA == nil {
		var err error
		recordsA, err = h.store.LoadCatalogue(ctx, req.RetailerA)
		if err != nil {
			c.JSON(catalogueErrStatus(err), gin.H{"error": err.Error()})
			return
		}
	}

	recordsB := req.RecordsB
	if recordsB == nil {
		var err error
		recordsB, err = h.store.LoadCatalogue(ctx, req.RetailerB)
		if err != nil {
			c.JSON(catalogueErrStatus(err), gin.H{"error": err.Error()})
			return
		}
	}

	cacheKey := compareCacheKey(req.RetailerA, req.RetailerB, recordsA, recordsB)
	if cached, err := h.cache.Get(ctx, cacheKey); err == nil {
		c.JSON(http.StatusOK, gin.H{"report": cached, "source": "cache"})
		return
	}

	report, err := h.matching.Compare(ctx, req.RetailerA, req.RetailerB, recordsA, recordsB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Persist {
		if err := h.store.SaveReport(ctx, report); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	// A cache write failure is not worth failing the request over
	_ = h.cache.Set(ctx, cacheKey, report)

	c.JSON(http.StatusOK, gin.H{"report": report, "source": "live"})
}

// compareCacheKey fingerprints both record lists so any change in record
// content, not just count, yields a distinct key.
func compareCacheKey(retailerA, retailerB string, recordsA, recordsB []domain.DealRecord) string {
	h := fnv.New64a()
	for _, records := range [][]domain.DealRecord{recordsA, recordsB} {
		for _, r := range records {
			fmt.Fprintf(h, "%s|%s|%s|%s;", r.ID, r.ProductName, r.CurrentPrice, r.OriginalPrice)
		}
		h.Write([]byte{0})
	}
	return fmt.Sprintf("compare:%s:%s:%x", retailerA, retailerB, h.Sum64())
}

func catalogueErrStatus(err error) int {
	if errors.Is(err, domain.ErrCatalogueNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
