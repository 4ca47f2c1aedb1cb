package model

import "time"

// Order is one product unit bought by one customer. A cart with N
// items becomes N rows; there is no batch identifier.
type Order struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID    int64     `gorm:"column:customer_id;not null;index" json:"customer_id"`
	ProductID     int64     `gorm:"column:product_id;not null;index" json:"product_id"`
	PaymentMethod string    `gorm:"column:payment_method;size:50" json:"payment_method"`
	Status        string    `gorm:"column:status;size:50;default:Recebido" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Associations give the schema real foreign keys; enforcement
	// also needs the connection's foreign_keys pragma, which InitDB
	// turns on.
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Product  *Product  `gorm:"foreignKey:ProductID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderStatusReceived is assigned exactly once, at creation. This
// system defines no further lifecycle transitions.
const OrderStatusReceived = "Recebido"

// Conventional payment-method labels. Stored as free text for display
// only; storage does not enforce membership.
const (
	PaymentCash   = "Dinheiro"
	PaymentPix    = "Pix"
	PaymentCredit = "Crédito"
	PaymentDebit  = "Débito"
)

// OrderSummary is one row of the customer order history join.
type OrderSummary struct {
	OrderID       int64   `json:"order_id"`
	ProductName   string  `json:"product_name"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
}
