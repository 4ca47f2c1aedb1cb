package v1

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/api/middleware"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/service"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/session"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/logger"
)

// CartHandler mutates the visit's server-side cart. One cart entry is
// one product unit; duplicates are allowed.
type CartHandler struct {
	catalogService *service.CatalogService
	sessions       session.Store
}

func NewCartHandler(catalogService *service.CatalogService, sessions session.Store) *CartHandler {
	return &CartHandler{
		catalogService: catalogService,
		sessions:       sessions,
	}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
}

// AddItem appends one unit of the product to the cart. The product
// must exist in the catalog at add time.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 {
		Respond(c, http.StatusBadRequest, e.INVALID_PARAMS, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	res, err := h.catalogService.GetProduct(ctx, req.ProductID)
	if err != nil {
		logger.ErrorContext(ctx, "cart add lookup failed", "product_id", req.ProductID, "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}
	if res.Code != e.SUCCESS {
		RespondMsg(c, http.StatusNotFound, res.Code, res.Message, nil)
		return
	}

	token := middleware.SessionToken(c)
	if err := h.sessions.CartAdd(ctx, token, req.ProductID); err != nil {
		logger.ErrorContext(ctx, "cart add failed", "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}

	h.renderCart(ctx, c, token)
}

// RemoveItem drops one occurrence of the product from the cart; ids
// not in the cart are a no-op, as in the storefront UI.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Respond(c, http.StatusBadRequest, e.INVALID_PARAMS, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	token := middleware.SessionToken(c)
	if err := h.sessions.CartRemove(ctx, token, productID); err != nil {
		logger.ErrorContext(ctx, "cart remove failed", "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}

	h.renderCart(ctx, c, token)
}

// GetCart shows the cart joined with live catalog rows plus the total.
func (h *CartHandler) GetCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	h.renderCart(ctx, c, middleware.SessionToken(c))
}

func (h *CartHandler) renderCart(ctx context.Context, c *gin.Context, token string) {
	items, err := h.sessions.CartItems(ctx, token)
	if err != nil {
		logger.ErrorContext(ctx, "cart read failed", "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}

	view, err := h.catalogService.PriceCart(ctx, items)
	if err != nil {
		logger.ErrorContext(ctx, "cart pricing failed", "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}

	Respond(c, http.StatusOK, e.SUCCESS, gin.H{
		"cart": view,
	})
}

// RegisterRoutes wires the cart endpoints.
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.DELETE("/items/:id", h.RemoveItem)
	}
}
