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

// CustomerHandler covers registration, phone identification and the
// owner's per-customer order inspection.
type CustomerHandler struct {
	customerService *service.CustomerService
	orderService    *service.OrderService
	sessions        session.Store
}

func NewCustomerHandler(customerService *service.CustomerService, orderService *service.OrderService, sessions session.Store) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		orderService:    orderService,
		sessions:        sessions,
	}
}

type registerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type identifyRequest struct {
	Phone string `json:"phone"`
}

// Register creates the customer and identifies the current visit on
// success, so the customer can go straight to the menu.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Respond(c, http.StatusBadRequest, e.INVALID_PARAMS, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	res, err := h.customerService.Register(ctx, req.Name, req.Address, req.Phone)
	if err != nil {
		logger.ErrorContext(ctx, "register failed", "err", err)
		RespondMsg(c, http.StatusInternalServerError, res.Code, res.Message, nil)
		return
	}

	switch res.Code {
	case e.SUCCESS:
	case e.ERROR_CUSTOMER_EXISTS:
		RespondMsg(c, http.StatusConflict, res.Code, res.Message, nil)
		return
	default:
		RespondMsg(c, http.StatusBadRequest, res.Code, res.Message, nil)
		return
	}

	token := middleware.SessionToken(c)
	sess := &session.Session{
		CustomerID:   res.Customer.ID,
		CustomerName: res.Customer.Name,
		Phone:        res.Customer.Phone,
	}
	if err := h.sessions.Save(ctx, token, sess); err != nil {
		logger.WarnContext(ctx, "session save failed after register", "err", err)
	}

	RespondMsg(c, http.StatusCreated, e.SUCCESS, res.Message, gin.H{
		"customer": res.Customer,
	})
}

// Identify resolves a phone to a customer and binds it to the visit.
// An unknown phone is a regular miss, never a 5xx.
func (h *CustomerHandler) Identify(c *gin.Context) {
	var req identifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Respond(c, http.StatusBadRequest, e.INVALID_PARAMS, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	res, err := h.customerService.Identify(ctx, req.Phone)
	if err != nil {
		logger.ErrorContext(ctx, "identify failed", "err", err)
		RespondMsg(c, http.StatusInternalServerError, res.Code, res.Message, nil)
		return
	}

	switch res.Code {
	case e.SUCCESS:
	case e.ERROR_CUSTOMER_NOT_EXISTS:
		RespondMsg(c, http.StatusNotFound, res.Code, res.Message, nil)
		return
	default:
		RespondMsg(c, http.StatusBadRequest, res.Code, res.Message, nil)
		return
	}

	token := middleware.SessionToken(c)
	sess := &session.Session{
		CustomerID:   res.Customer.ID,
		CustomerName: res.Customer.Name,
		Phone:        res.Customer.Phone,
	}
	if err := h.sessions.Save(ctx, token, sess); err != nil {
		logger.WarnContext(ctx, "session save failed after identify", "err", err)
	}

	Respond(c, http.StatusOK, e.SUCCESS, gin.H{
		"customer_id": res.Customer.ID,
		"name":        res.Customer.Name,
	})
}

// CustomerOrders lets the owner inspect any customer's history by id.
func (h *CustomerHandler) CustomerOrders(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Respond(c, http.StatusBadRequest, e.INVALID_PARAMS, nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.orderService.History(ctx, customerID)
	if err != nil {
		logger.ErrorContext(ctx, "order history failed", "customer_id", customerID, "err", err)
		Respond(c, http.StatusInternalServerError, e.ERROR, nil)
		return
	}

	Respond(c, http.StatusOK, e.SUCCESS, gin.H{
		"orders": orders,
	})
}

// RegisterRoutes wires the customer endpoints.
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Register)
		customers.POST("/identify", h.Identify)
		customers.GET("/:id/orders", h.CustomerOrders)
	}
}
