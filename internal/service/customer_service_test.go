package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/config"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao/sqlite"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/service"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.InitDB(&config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "pizzaria_test.db")})
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db, false))
	return db
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"85985417565", "85985417565", true},
		{"(85)98541-7565", "85985417565", true},
		{"85 98541 7565", "85985417565", true},
		{"8598541756", "", false},      // 10 digits
		{"559859999990000", "", false}, // too long
		{"", "", false},
		{"abc", "", false},
	}
	for _, tt := range tests {
		got, ok := service.NormalizePhone(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewCustomerService(dao.NewCustomerDao(db))
	ctx := context.Background()

	res, err := svc.Register(ctx, "", "Rua X", "85999990000")
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_MISSING_FIELDS, res.Code)

	res, err = svc.Register(ctx, "Ana", "", "85999990000")
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_MISSING_FIELDS, res.Code)

	res, err = svc.Register(ctx, "Ana", "Rua X", "123")
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_INVALID_PHONE, res.Code)
}

func TestRegisterAndIdentify(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewCustomerService(dao.NewCustomerDao(db))
	ctx := context.Background()

	res, err := svc.Register(ctx, "Ana", "Rua X", "(85)99999-0000")
	require.NoError(t, err)
	require.Equal(t, e.SUCCESS, res.Code)
	require.NotNil(t, res.Customer)
	assert.Equal(t, "85999990000", res.Customer.Phone)

	// Identification normalizes before matching.
	found, err := svc.Identify(ctx, "85 99999 0000")
	require.NoError(t, err)
	require.Equal(t, e.SUCCESS, found.Code)
	assert.Equal(t, res.Customer.ID, found.Customer.ID)
	assert.Equal(t, "Ana", found.Customer.Name)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewCustomerService(dao.NewCustomerDao(db))
	ctx := context.Background()

	res, err := svc.Register(ctx, "Ana", "Rua X", "85999990000")
	require.NoError(t, err)
	require.Equal(t, e.SUCCESS, res.Code)

	res, err = svc.Register(ctx, "Bia", "Rua Y", "85999990000")
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_CUSTOMER_EXISTS, res.Code)
}

func TestIdentifyUnknownPhone(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewCustomerService(dao.NewCustomerDao(db))

	res, err := svc.Identify(context.Background(), "85900000000")
	require.NoError(t, err)
	assert.Equal(t, e.ERROR_CUSTOMER_NOT_EXISTS, res.Code)
	assert.Nil(t, res.Customer)
}
