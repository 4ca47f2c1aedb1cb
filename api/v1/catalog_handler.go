package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/service"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/logger"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Menu lists the catalog. Each product carries an image_url only when
// its file actually resolves on disk.
func (h *CatalogHandler) Menu(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	products, err := h.catalogService.Menu(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "menu listing failed", "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}

	items := make([]gin.H, 0, len(products))
	for _, p := range products {
		item := gin.H{
			"id":    p.ID,
			"name":  p.Name,
			"price": p.Price,
		}
		if _, ok := h.catalogService.ResolveImage(p.Image); ok {
			item["image_url"] = fmt.Sprintf("/api/v1/menu/%d/image", p.ID)
		}
		items = append(items, item)
	}

	Respond(c, http.StatusOK, e.SUCCESS, gin.H{
		"products": items,
	})
}

// ProductImage serves the product's image file through the filename
// alias table.
func (h *CatalogHandler) ProductImage(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Respond(c, http.StatusBadRequest, e.INVALID_PARAMS, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	res, err := h.catalogService.GetProduct(ctx, productID)
	if err != nil {
		logger.ErrorContext(ctx, "product lookup failed", "product_id", productID, "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}
	if res.Code != e.SUCCESS {
		RespondMsg(c, http.StatusNotFound, res.Code, res.Message, nil)
		return
	}

	path, ok := h.catalogService.ResolveImage(res.Product.Image)
	if !ok {
		Respond(c, http.StatusNotFound, e.ERROR_IMAGE_NOT_FOUND, nil)
		return
	}

	c.File(path)
}

// RegisterRoutes wires the menu endpoints.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.Menu)
		menu.GET("/:id/image", h.ProductImage)
	}
}
