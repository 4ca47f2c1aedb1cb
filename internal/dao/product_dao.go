package dao

import (
	"context"
	"errors"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"

	"gorm.io/gorm"
)

type ProductDao struct {
	db *gorm.DB
}

func NewProductDao(db *gorm.DB) *ProductDao {
	return &ProductDao{db: db}
}

// SeedCatalog inserts each entry, swallowing name-uniqueness conflicts
// as success-no-ops. Rows already present keep the price and image
// from whichever seed first inserted them.
func (d *ProductDao) SeedCatalog(ctx context.Context, entries []model.SeedEntry) error {
	for _, entry := range entries {
		product := model.Product{
			Name:  entry.Name,
			Price: entry.Price,
			Image: entry.Image,
		}
		err := d.db.WithContext(ctx).Create(&product).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return nil
}

// ListProducts returns all catalog rows in insertion (id) order.
func (d *ProductDao) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := d.db.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}

// GetProductByID fetches one catalog row by primary key.
func (d *ProductDao) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := d.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteAllProducts wipes the catalog. Only the maintenance reseed
// tool calls this; the storefront never deletes products.
func (d *ProductDao) DeleteAllProducts(ctx context.Context) error {
	return d.db.WithContext(ctx).Where("1 = 1").Delete(&model.Product{}).Error
}
