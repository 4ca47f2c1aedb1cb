package model

import "time"

type Product struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image     string    `gorm:"size:255" json:"image"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (*Product) TableName() string {
	return "products"
}

// SeedEntry is one row of the startup catalog seed.
type SeedEntry struct {
	Name  string
	Price float64
	Image string
}

// DefaultCatalog is the baseline menu ensured on every start. Later
// seeds never overwrite a row that already exists by name.
var DefaultCatalog = []SeedEntry{
	{Name: "Pizza Margherita", Price: 35.00, Image: "margherita.png"},
	{Name: "Pizza Calabresa", Price: 40.00, Image: "calabresa.png"},
	{Name: "Hambúrguer Artesanal", Price: 25.00, Image: "burger.png"},
	{Name: "Refrigerante Lata", Price: 6.00, Image: "refrigerante.png"},
}
