package service

import (
	"context"
	"errors"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"

	"gorm.io/gorm"
)

type OrderService struct {
	orderDao    *dao.OrderDao
	customerDao *dao.CustomerDao
	productDao  *dao.ProductDao
}

func NewOrderService(orderDao *dao.OrderDao, customerDao *dao.CustomerDao, productDao *dao.ProductDao) *OrderService {
	return &OrderService{
		orderDao:    orderDao,
		customerDao: customerDao,
		productDao:  productDao,
	}
}

type PlaceOrderResult struct {
	Code    int
	Message string
	OrderID int64
}

// PlaceOrder creates one order row for one product unit. Both ids must
// reference existing rows; a dangling reference is rejected before any
// row is written. Status is set once, here, and never transitioned.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID, productID int64, paymentMethod string) (*PlaceOrderResult, error) {
	if paymentMethod == "" {
		return &PlaceOrderResult{
			Code:    e.ERROR_PAYMENT_METHOD,
			Message: e.GetMsg(e.ERROR_PAYMENT_METHOD),
		}, nil
	}

	if _, err := s.customerDao.GetCustomerByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &PlaceOrderResult{
				Code:    e.ERROR_ORDER_REFERENCE,
				Message: e.GetMsg(e.ERROR_ORDER_REFERENCE),
			}, nil
		}
		return &PlaceOrderResult{Code: e.ERROR, Message: e.GetMsg(e.ERROR)}, err
	}

	if _, err := s.productDao.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &PlaceOrderResult{
				Code:    e.ERROR_ORDER_REFERENCE,
				Message: e.GetMsg(e.ERROR_ORDER_REFERENCE),
			}, nil
		}
		return &PlaceOrderResult{Code: e.ERROR, Message: e.GetMsg(e.ERROR)}, err
	}

	order := &model.Order{
		CustomerID:    customerID,
		ProductID:     productID,
		PaymentMethod: paymentMethod,
		Status:        model.OrderStatusReceived,
	}
	if err := s.orderDao.CreateOrder(ctx, order); err != nil {
		return &PlaceOrderResult{Code: e.ERROR, Message: e.GetMsg(e.ERROR)}, err
	}

	return &PlaceOrderResult{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		OrderID: order.ID,
	}, nil
}

type CheckoutResult struct {
	Code          int
	Message       string
	OrderIDs      []int64
	PaymentMethod string
}

// Checkout turns each cart item into one independent PlaceOrder call.
// There is no batch identifier and no cross-item transaction: every
// order commits on its own, and a failure stops the loop without
// rolling back orders already placed.
func (s *OrderService) Checkout(ctx context.Context, customerID int64, productIDs []int64, paymentMethod string) (*CheckoutResult, error) {
	if len(productIDs) == 0 {
		return &CheckoutResult{
			Code:    e.ERROR_CART_EMPTY,
			Message: e.GetMsg(e.ERROR_CART_EMPTY),
		}, nil
	}

	orderIDs := make([]int64, 0, len(productIDs))
	for _, productID := range productIDs {
		res, err := s.PlaceOrder(ctx, customerID, productID, paymentMethod)
		if err != nil {
			return &CheckoutResult{Code: res.Code, Message: res.Message, OrderIDs: orderIDs}, err
		}
		if res.Code != e.SUCCESS {
			return &CheckoutResult{Code: res.Code, Message: res.Message, OrderIDs: orderIDs}, nil
		}
		orderIDs = append(orderIDs, res.OrderID)
	}

	return &CheckoutResult{
		Code:          e.SUCCESS,
		Message:       "Pedido finalizado com sucesso! Pagamento via " + paymentMethod + ".",
		OrderIDs:      orderIDs,
		PaymentMethod: paymentMethod,
	}, nil
}

// History returns the customer's order history, most recent first.
// Customers with no orders (or unknown ids) get an empty list.
func (s *OrderService) History(ctx context.Context, customerID int64) ([]model.OrderSummary, error) {
	return s.orderDao.ListOrdersForCustomer(ctx, customerID)
}
