package handlers

import (
	"net/http"
	"strings"

	"haviaa/models"
	"haviaa/services/catalog"
	"haviaa/services/pricing"
	"haviaa/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the maid catalog.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(cat catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// maidQuery mirrors the client filter form. Absent fields keep their defaults.
type maidQuery struct {
	Locality      string   `form:"locality"`
	MinExperience *int     `form:"minExperience"`
	MaxExperience *int     `form:"maxExperience"`
	Languages     []string `form:"languages"`
	MinPrice      *int64   `form:"minPrice"`
	MaxPrice      *int64   `form:"maxPrice"`
}

func (q maidQuery) criteria() models.FilterCriteria {
	c := models.DefaultFilterCriteria()
	c.Locality = strings.TrimSpace(q.Locality)
	if q.MinExperience != nil {
		c.MinExperience = *q.MinExperience
	}
	if q.MaxExperience != nil {
		c.MaxExperience = *q.MaxExperience
	}
	if q.MinPrice != nil {
		c.PriceRange.Min = *q.MinPrice
	}
	if q.MaxPrice != nil {
		c.PriceRange.Max = *q.MaxPrice
	}
	// accept both ?languages=a&languages=b and ?languages=a,b
	for _, raw := range q.Languages {
		for _, lang := range strings.Split(raw, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				c.Languages = append(c.Languages, lang)
			}
		}
	}
	return c
}

// ListMaidsHandler handles GET /api/maids.
func (h *CatalogHandler) ListMaidsHandler(c *gin.Context) {
	var q maidQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	criteria := q.criteria()
	maids, err := h.Catalog.Search(criteria)
	if err != nil {
		utils.RespondError(c, "Invalid filter", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"maids": maids, "criteria": criteria})
}

// GetMaidHandler handles GET /api/maids/:id.
func (h *CatalogHandler) GetMaidHandler(c *gin.Context) {
	maid, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, "Maid not found", err)
		return
	}
	c.JSON(http.StatusOK, maid)
}

// GetOptionsHandler handles GET /api/maids/options: everything the booking forms offer.
func (h *CatalogHandler) GetOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"localities":  h.Catalog.Localities(),
		"languages":   h.Catalog.Languages(),
		"timeSlots":   models.TimeSlots,
		"durations":   models.DurationOptions,
		"dailyHours":  pricing.Tiers(),
		"preferences": models.PreferenceOptions,
		"defaults":    models.DefaultFilterCriteria(),
	})
}
