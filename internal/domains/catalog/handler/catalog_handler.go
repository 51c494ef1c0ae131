package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary-backend/internal/domains/catalog/service"
	"locallibrary-backend/internal/shared/render"
)

type CatalogHandler struct {
	service service.Service
	render  render.Renderer
}

func NewCatalogHandler(s service.Service, r render.Renderer) *CatalogHandler {
	return &CatalogHandler{service: s, render: r}
}

// Index renders the home page with catalog-wide record counts.
func (h *CatalogHandler) Index(c *gin.Context) {
	counts, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.render.Error(c, http.StatusInternalServerError, "Failed to load catalog counts")
		return
	}

	h.render.HTML(c, http.StatusOK, "index", gin.H{
		"title":                        "Local Library Home",
		"book_count":                   counts.Books,
		"bookinstance_count":           counts.Instances,
		"bookinstance_available_count": counts.InstancesAvailable,
		"author_count":                 counts.Authors,
		"genre_count":                  counts.Genres,
	})
}
