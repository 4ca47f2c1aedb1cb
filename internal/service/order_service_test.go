package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/service"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"
)

type orderFixture struct {
	svc      *service.OrderService
	orderDao *dao.OrderDao
	customer *model.Customer
	products []model.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()

	customerDao := dao.NewCustomerDao(db)
	productDao := dao.NewProductDao(db)
	orderDao := dao.NewOrderDao(db)

	require.NoError(t, productDao.SeedCatalog(ctx, model.DefaultCatalog))
	products, err := productDao.ListProducts(ctx)
	require.NoError(t, err)

	customer := &model.Customer{Name: "Ana", Address: "Rua X", Phone: "85999990000"}
	require.NoError(t, customerDao.CreateCustomer(ctx, customer))

	return &orderFixture{
		svc:      service.NewOrderService(orderDao, customerDao, productDao),
		orderDao: orderDao,
		customer: customer,
		products: products,
	}
}

func TestPlaceOrderAndHistory(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	res, err := f.svc.PlaceOrder(ctx, f.customer.ID, f.products[0].ID, model.PaymentPix)
	require.NoError(t, err)
	require.Equal(t, e.SUCCESS, res.Code)
	assert.NotZero(t, res.OrderID)

	orders, err := f.svc.History(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusReceived, orders[0].Status)
	assert.Equal(t, model.PaymentPix, orders[0].PaymentMethod)
	assert.Equal(t, f.products[0].Name, orders[0].ProductName)
	assert.Equal(t, f.products[0].Price, orders[0].Price)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	res, err := f.svc.PlaceOrder(ctx, f.customer.ID, 424242, model.PaymentPix)
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_ORDER_REFERENCE, res.Code)

	// Rejection must not leave a row behind.
	orders, err := f.svc.History(ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	f := newOrderFixture(t)

	res, err := f.svc.PlaceOrder(context.Background(), 424242, f.products[0].ID, model.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_ORDER_REFERENCE, res.Code)
}

func TestPlaceOrderRequiresPaymentMethod(t *testing.T) {
	f := newOrderFixture(t)

	res, err := f.svc.PlaceOrder(context.Background(), f.customer.ID, f.products[0].ID, "")
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_PAYMENT_METHOD, res.Code)
}

func TestCheckoutFansOutCartItems(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	cart := []int64{f.products[0].ID, f.products[1].ID, f.products[0].ID}
	res, err := f.svc.Checkout(ctx, f.customer.ID, cart, model.PaymentCredit)
	require.NoError(t, err)
	require.Equal(t, e.SUCCESS, res.Code)
	assert.Len(t, res.OrderIDs, 3)

	// One row per cart item, newest first.
	orders, err := f.svc.History(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, res.OrderIDs[2], orders[0].OrderID)
	assert.Equal(t, res.OrderIDs[1], orders[1].OrderID)
	assert.Equal(t, res.OrderIDs[0], orders[2].OrderID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	res, err := f.svc.Checkout(context.Background(), f.customer.ID, nil, model.PaymentPix)
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_CART_EMPTY, res.Code)
}

func TestCheckoutStopsAtDanglingReference(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	// Second item vanished from the catalog; the first order stays
	// committed because every call commits independently.
	cart := []int64{f.products[0].ID, 424242, f.products[1].ID}
	res, err := f.svc.Checkout(ctx, f.customer.ID, cart, model.PaymentDebit)
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_ORDER_REFERENCE, res.Code)
	assert.Len(t, res.OrderIDs, 1)

	orders, err := f.svc.History(ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestHistoryEmptyForUnknownCustomer(t *testing.T) {
	f := newOrderFixture(t)

	orders, err := f.svc.History(context.Background(), 424242)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
