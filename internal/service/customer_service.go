package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"

	"gorm.io/gorm"
)

type CustomerService struct {
	customerDao *dao.CustomerDao
}

func NewCustomerService(customerDao *dao.CustomerDao) *CustomerService {
	return &CustomerService{
		customerDao: customerDao,
	}
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips every non-digit character and requires the
// result to be exactly 11 digits (DDD + number). This is the single
// phone policy for the whole deployment; the store itself matches the
// stored string exactly and applies no policy of its own.
func NormalizePhone(raw string) (string, bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) != 11 {
		return "", false
	}
	return digits, true
}

type RegisterResult struct {
	Code     int
	Message  string
	Customer *model.Customer
}

// Register validates input, applies the phone policy and inserts the
// customer. A duplicate phone is a business failure only when the
// store enforces the unique index; otherwise the insert goes through
// and duplicate phones accumulate.
func (s *CustomerService) Register(ctx context.Context, name, address, phone string) (*RegisterResult, error) {
	if name == "" || address == "" || phone == "" {
		return &RegisterResult{
			Code:    e.ERROR_MISSING_FIELDS,
			Message: e.GetMsg(e.ERROR_MISSING_FIELDS),
		}, nil
	}

	normalized, ok := NormalizePhone(phone)
	if !ok {
		return &RegisterResult{
			Code:    e.ERROR_INVALID_PHONE,
			Message: e.GetMsg(e.ERROR_INVALID_PHONE),
		}, nil
	}

	customer := &model.Customer{
		Name:    name,
		Address: address,
		Phone:   normalized,
	}
	if err := s.customerDao.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &RegisterResult{
				Code:    e.ERROR_CUSTOMER_EXISTS,
				Message: e.GetMsg(e.ERROR_CUSTOMER_EXISTS),
			}, nil
		}
		return &RegisterResult{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	return &RegisterResult{
		Code:     e.SUCCESS,
		Message:  fmt.Sprintf("Cliente '%s' cadastrado com sucesso!", name),
		Customer: customer,
	}, nil
}

type IdentifyResult struct {
	Code     int
	Message  string
	Customer *model.Customer
}

// Identify looks the customer up by phone after normalization. A miss
// is a business result, not an error.
func (s *CustomerService) Identify(ctx context.Context, phone string) (*IdentifyResult, error) {
	normalized, ok := NormalizePhone(phone)
	if !ok {
		return &IdentifyResult{
			Code:    e.ERROR_INVALID_PHONE,
			Message: e.GetMsg(e.ERROR_INVALID_PHONE),
		}, nil
	}

	customer, err := s.customerDao.GetCustomerByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &IdentifyResult{
				Code:    e.ERROR_CUSTOMER_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_CUSTOMER_NOT_EXISTS),
			}, nil
		}
		return &IdentifyResult{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	return &IdentifyResult{
		Code:     e.SUCCESS,
		Message:  e.GetMsg(e.SUCCESS),
		Customer: customer,
	}, nil
}
