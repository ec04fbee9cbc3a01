package handler

import (
	"net/http"

	"procurement/internal/service"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/categories", h.ListCategories)
	router.GET("/api/products", h.ListProducts)
	router.POST("/api/admin/reset", h.Reset)
}

// @Summary      List categories with budget figures
// @Description  Recomputes and persists the budget ledger before returning; not read-only with respect to stored figures
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, categories))
}

// @Summary      List catalog products
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, products))
}

// @Summary      Reset all data
// @Description  Discards every document and restores the seed catalog with zeroed counters
// @Tags         Admin
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/admin/reset [post]
func (h *CatalogHandler) Reset(c *gin.Context) {
	if err := h.catalogService.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"reset": true}))
}
