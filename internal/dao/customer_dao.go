package dao

import (
	"context"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"

	"gorm.io/gorm"
)

type CustomerDao struct {
	db *gorm.DB
}

func NewCustomerDao(db *gorm.DB) *CustomerDao {
	return &CustomerDao{db: db}
}

// CreateCustomer inserts a new customer row. A unique-phone violation
// surfaces as gorm.ErrDuplicatedKey for the service layer to map.
func (d *CustomerDao) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return d.db.WithContext(ctx).Create(customer).Error
}

// GetCustomerByPhone returns the first row, in natural id order, whose
// phone exactly matches. No normalization happens here; callers apply
// any digit-stripping policy before calling.
func (d *CustomerDao) GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	var customer model.Customer
	err := d.db.WithContext(ctx).Where("phone = ?", phone).Order("id").First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomerByID fetches one customer row by primary key.
func (d *CustomerDao) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer
	err := d.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
