package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/assets"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/service"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"
)

func newCatalogService(t *testing.T) (*service.CatalogService, *dao.ProductDao) {
	t.Helper()
	db := newTestDB(t)
	productDao := dao.NewProductDao(db)
	require.NoError(t, productDao.SeedCatalog(context.Background(), model.DefaultCatalog))
	return service.NewCatalogService(productDao, assets.NewResolver(t.TempDir())), productDao
}

func TestMenuKeepsInsertionOrder(t *testing.T) {
	svc, _ := newCatalogService(t)

	products, err := svc.Menu(context.Background())
	require.NoError(t, err)
	require.Len(t, products, len(model.DefaultCatalog))
	for i, entry := range model.DefaultCatalog {
		assert.Equal(t, entry.Name, products[i].Name)
		assert.Equal(t, entry.Price, products[i].Price)
	}
}

func TestGetProductMiss(t *testing.T) {
	svc, _ := newCatalogService(t)

	res, err := svc.GetProduct(context.Background(), 424242)
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_PRODUCT_NOT_EXISTS, res.Code)
}

func TestPriceCartTotalsAndSkipsMissing(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	products, err := svc.Menu(ctx)
	require.NoError(t, err)

	cart := []int64{products[0].ID, products[1].ID, products[0].ID, 424242}
	view, err := svc.PriceCart(ctx, cart)
	require.NoError(t, err)

	// The unknown id is skipped, duplicates count twice.
	require.Len(t, view.Items, 3)
	assert.Equal(t, products[0].Price*2+products[1].Price, view.Total)
}

func TestPriceCartEmpty(t *testing.T) {
	svc, _ := newCatalogService(t)

	view, err := svc.PriceCart(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
}

func TestResolveImageThroughAliases(t *testing.T) {
	dir := t.TempDir()
	// Deployment only has the double-extension variant on disk.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "margherita.png.png"), []byte("png"), 0644))

	db := newTestDB(t)
	productDao := dao.NewProductDao(db)
	svc := service.NewCatalogService(productDao, assets.NewResolver(dir))

	path, ok := svc.ResolveImage("margherita.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "margherita.png.png"), path)

	_, ok = svc.ResolveImage("calabresa.png")
	assert.False(t, ok)

	_, ok = svc.ResolveImage("")
	assert.False(t, ok)
}
