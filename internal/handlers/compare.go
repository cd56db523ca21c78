package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickcompare/internal/compare"
	"quickcompare/internal/history"
	"quickcompare/internal/models"
	"quickcompare/internal/util"
	"quickcompare/internal/validation"
)

// CompareHandler serves the price comparison API
type CompareHandler struct {
	service *compare.Service
	history *history.Store
}

func NewCompareHandler(service *compare.Service, hist *history.Store) *CompareHandler {
	return &CompareHandler{service: service, history: hist}
}

// CompareRequest is the search payload. Location fields are all optional;
// pincode takes precedence over city when both are set.
type CompareRequest struct {
	Query   string              `json:"query" binding:"required"`
	City    string              `json:"city,omitempty"`
	Pincode string              `json:"pincode,omitempty"`
	Coords  *models.Coordinates `json:"coords,omitempty"`
}

// ScrapeRequest is the payload for a single-platform scrape
type ScrapeRequest struct {
	Query   string              `json:"query" binding:"required"`
	City    string              `json:"city,omitempty"`
	Pincode string              `json:"pincode,omitempty"`
	Coords  *models.Coordinates `json:"coords,omitempty"`
}

func (r *CompareRequest) location() *models.Location {
	if r.City == "" && r.Pincode == "" && r.Coords == nil {
		return nil
	}
	return &models.Location{City: r.City, Pincode: r.Pincode, Coordinates: r.Coords}
}

func (r *ScrapeRequest) location() *models.Location {
	if r.City == "" && r.Pincode == "" && r.Coords == nil {
		return nil
	}
	return &models.Location{City: r.City, Pincode: r.Pincode, Coordinates: r.Coords}
}

// Compare runs a price comparison across all platforms
// @Summary Compare product prices across quick-commerce platforms
// @Description Scrapes all supported platforms concurrently for the given query, groups matching products and ranks each by total cost (price + delivery fee). Partial platform failures are reported in failedPlatforms; the request still succeeds.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Search query with optional delivery location"
// @Success 200 {object} models.ComparisonResult
// @Failure 400 {object} map[string]string "error: Invalid request"
// @Failure 429 {object} map[string]string "error: Too Many Requests - Rate limited"
// @Router /api/compare [post]
func (h *CompareHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	query, err := validation.ValidateSearchQuery(req.Query)
	if err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if req.Pincode != "" {
		if err := validation.ValidatePincode(req.Pincode); err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}
	if req.Coords != nil {
		if err := validation.ValidateCoordinates(req.Coords.Latitude, req.Coords.Longitude); err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	result, err := h.service.Compare(c.Request.Context(), query, req.location())
	if err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, "Comparison failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ScrapePlatform scrapes a single platform
// @Summary Scrape one platform directly
// @Description Runs a single platform's scraper for diagnostics and manual refresh. Subject to a per-platform cooldown.
// @Tags compare
// @Accept json
// @Produce json
// @Param platform path string true "Platform identifier" Enums(zepto, blinkit, swiggy, bigbasket)
// @Param request body ScrapeRequest true "Search query with optional delivery location"
// @Success 200 {object} models.ScrapeOutcome
// @Failure 400 {object} map[string]string "error: Invalid request or unknown platform"
// @Failure 429 {object} map[string]string "error: Scrape too frequent"
// @Router /api/scrape/{platform} [post]
func (h *CompareHandler) ScrapePlatform(c *gin.Context) {
	platform := models.Platform(c.Param("platform"))

	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	query, err := validation.ValidateSearchQuery(req.Query)
	if err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	outcome, err := h.service.ScrapeOne(c.Request.Context(), platform, query, req.location())
	if err != nil {
		util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// Platforms lists supported platforms
// @Summary List supported platforms
// @Description Returns display metadata for every registered platform
// @Tags platforms
// @Produce json
// @Success 200 {array} models.PlatformInfo
// @Router /api/platforms [get]
func (h *CompareHandler) Platforms(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Platforms())
}

// Status reports per-platform telemetry
// @Summary Platform scraper status
// @Description Returns last scrape time and cache hit rate for each platform
// @Tags platforms
// @Produce json
// @Success 200 {array} models.PlatformStatus
// @Router /api/status [get]
func (h *CompareHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

// History lists past comparisons
// @Summary List comparison history
// @Description Returns recent comparisons, newest first, with optional city and pincode filters
// @Tags history
// @Produce json
// @Param limit query int false "Page size (max 100)" default(20)
// @Param offset query int false "Page offset" default(0)
// @Param city query string false "Filter by city"
// @Param pincode query string false "Filter by pincode"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "error: Invalid filter"
// @Failure 500 {object} map[string]string "error: History lookup failed"
// @Failure 503 {object} map[string]string "error: History disabled"
// @Router /api/history [get]
func (h *CompareHandler) History(c *gin.Context) {
	if h.history == nil {
		util.SafeErrorResponse(c, http.StatusServiceUnavailable, "History is not enabled", nil)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	city := c.Query("city")
	pincode := c.Query("pincode")

	if city != "" {
		if err := validation.ValidateCity(city); err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}
	if pincode != "" {
		if err := validation.ValidatePincode(pincode); err != nil {
			util.SafeErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	entries, err := h.history.List(limit, offset, city, pincode)
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to load history", err)
		return
	}

	total, err := h.history.Count(city, pincode)
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Failed to load history", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}
