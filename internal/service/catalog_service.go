package service

import (
	"context"
	"errors"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/assets"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/logger"

	"gorm.io/gorm"
)

type CatalogService struct {
	productDao *dao.ProductDao
	images     *assets.Resolver
}

func NewCatalogService(productDao *dao.ProductDao, images *assets.Resolver) *CatalogService {
	return &CatalogService{
		productDao: productDao,
		images:     images,
	}
}

// Menu returns the catalog in insertion order.
func (s *CatalogService) Menu(ctx context.Context) ([]model.Product, error) {
	return s.productDao.ListProducts(ctx)
}

type ProductResult struct {
	Code    int
	Message string
	Product *model.Product
}

func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (*ProductResult, error) {
	product, err := s.productDao.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ProductResult{
				Code:    e.ERROR_PRODUCT_NOT_EXISTS,
				Message: e.GetMsg(e.ERROR_PRODUCT_NOT_EXISTS),
			}, nil
		}
		return &ProductResult{
			Code:    e.ERROR,
			Message: e.GetMsg(e.ERROR),
		}, err
	}

	return &ProductResult{
		Code:    e.SUCCESS,
		Message: e.GetMsg(e.SUCCESS),
		Product: product,
	}, nil
}

// ResolveImage maps a catalog image name to an on-disk path through
// the filename alias table.
func (s *CatalogService) ResolveImage(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	return s.images.Resolve(name)
}

type CartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// PriceCart joins cart product ids with the live catalog and totals
// them. Ids whose product vanished (catalog reseed mid-visit) are
// skipped rather than failing the whole view.
func (s *CatalogService) PriceCart(ctx context.Context, productIDs []int64) (*CartView, error) {
	products, err := s.productDao.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := &CartView{Items: make([]CartItem, 0, len(productIDs))}
	for _, id := range productIDs {
		p, ok := byID[id]
		if !ok {
			logger.WarnContext(ctx, "cart references missing product", "product_id", id)
			continue
		}
		view.Items = append(view.Items, CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
		})
		view.Total += p.Price
	}
	return view, nil
}
