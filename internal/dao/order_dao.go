package dao

import (
	"context"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"

	"gorm.io/gorm"
)

type OrderDao struct {
	db *gorm.DB
}

func NewOrderDao(db *gorm.DB) *OrderDao {
	return &OrderDao{
		db: db,
	}
}

// CreateOrder inserts one order row. Status defaults to the initial
// value when the caller leaves it empty; nothing in this system
// transitions it afterwards.
func (d *OrderDao) CreateOrder(ctx context.Context, order *model.Order) error {
	if order.Status == "" {
		order.Status = model.OrderStatusReceived
	}
	return d.db.WithContext(ctx).Create(order).Error
}

// ListOrdersForCustomer joins orders with products for one customer,
// most recent order first. An unknown customer yields an empty slice,
// not an error.
func (d *OrderDao) ListOrdersForCustomer(ctx context.Context, customerID int64) ([]model.OrderSummary, error) {
	var summaries []model.OrderSummary
	err := d.db.WithContext(ctx).
		Table("orders").
		Select("orders.id AS order_id, products.name AS product_name, products.price AS price, orders.payment_method AS payment_method, orders.status AS status").
		Joins("JOIN products ON orders.product_id = products.id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.id DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
