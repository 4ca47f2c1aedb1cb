package model

import "time"

// Customer is identified by phone in application logic; the column is
// only unique when the store is configured to enforce it.
type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Phone     string    `gorm:"size:20;index" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (*Customer) TableName() string {
	return "customers"
}
