package api

import (
	"errors"
	"net/http"

	"roomhub/internal/domain/catalog"
	"roomhub/internal/handler/httperr"
	"roomhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	projector *usecase.CatalogProjector
}

func NewCatalogHandler(projector *usecase.CatalogProjector) *CatalogHandler {
	return &CatalogHandler{projector: projector}
}

// @Summary List catalog
// @Description Public catalog of approved listings, most recently approved first
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Entry
// @Router /api/catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	seq, err := h.projector.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	// Entries already are the public shape; no response DTO in between.
	entries := []catalog.Entry{}
	for e := range seq {
		entries = append(entries, e)
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Count a catalog view
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} map[string]int
// @Failure 404 {object} map[string]string
// @Router /api/catalog/{id}/view [post]
func (h *CatalogHandler) IncrementView(c *gin.Context) {
	views, err := h.projector.IncrementView(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrCatalogEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catalog entry not found"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": views})
}
