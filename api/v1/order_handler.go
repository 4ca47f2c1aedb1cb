package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/api/middleware"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/service"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/session"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/logger"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/utils"
)

// Fixed demo Pix payment display data, shown after a Pix checkout.
const (
	PixKey       = "chavepixficticia123"
	PixQRCodeURL = "https://api.qrserver.com/v1/create-qr-code/?data=chavepixficticia123&size=180x180"
)

type OrderHandler struct {
	orderService   *service.OrderService
	sessions       session.Store
	whatsappNumber string
}

func NewOrderHandler(orderService *service.OrderService, sessions session.Store, whatsappNumber string) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		sessions:       sessions,
		whatsappNumber: whatsappNumber,
	}
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// Checkout turns the visit's cart into order rows. Requires an
// identified session and a non-empty cart; the cart is cleared only
// after every item was placed.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Respond(c, http.StatusBadRequest, e.INVALID_PARAMS, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	token := middleware.SessionToken(c)
	sess, err := h.sessions.Get(ctx, token)
	if err != nil {
		logger.ErrorContext(ctx, "session read failed", "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}
	if !sess.Identified() {
		Respond(c, http.StatusUnauthorized, e.ERROR_NOT_IDENTIFIED, nil)
		return
	}

	items, err := h.sessions.CartItems(ctx, token)
	if err != nil {
		logger.ErrorContext(ctx, "cart read failed", "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}

	res, err := h.orderService.Checkout(ctx, sess.CustomerID, items, req.PaymentMethod)
	if err != nil {
		logger.ErrorContext(ctx, "checkout failed", "customer_id", sess.CustomerID, "err", err)
		RespondMsg(c, http.StatusInternalServerError, res.Code, res.Message, nil)
		return
	}
	if res.Code != e.SUCCESS {
		RespondMsg(c, http.StatusBadRequest, res.Code, res.Message, gin.H{
			"order_ids": res.OrderIDs,
		})
		return
	}

	if err := h.sessions.CartClear(ctx, token); err != nil {
		logger.WarnContext(ctx, "cart clear failed after checkout", "err", err)
	}

	extra := gin.H{
		"order_ids":      res.OrderIDs,
		"payment_method": res.PaymentMethod,
		"whatsapp_link":  utils.WhatsAppLink(h.whatsappNumber, utils.WhatsAppFollowUpMessage),
	}
	if res.PaymentMethod == model.PaymentPix {
		extra["pix_key"] = PixKey
		extra["pix_qr_code"] = PixQRCodeURL
	}

	RespondMsg(c, http.StatusCreated, e.SUCCESS, res.Message, extra)
}

// MyOrders lists the identified customer's history, newest first.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	token := middleware.SessionToken(c)
	sess, err := h.sessions.Get(ctx, token)
	if err != nil {
		logger.ErrorContext(ctx, "session read failed", "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}
	if !sess.Identified() {
		Respond(c, http.StatusUnauthorized, e.ERROR_NOT_IDENTIFIED, nil)
		return
	}

	orders, err := h.orderService.History(ctx, sess.CustomerID)
	if err != nil {
		logger.ErrorContext(ctx, "order history failed", "customer_id", sess.CustomerID, "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}

	Respond(c, http.StatusOK, e.SUCCESS, gin.H{
		"customer": sess.CustomerName,
		"orders":   orders,
	})
}

// RegisterRoutes wires checkout and order history.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)
	rg.GET("/orders", h.MyOrders)
}
