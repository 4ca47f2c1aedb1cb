package main

import (
	"context"
	"time"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao/sqlite"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/app"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/logger"
)

// maintenanceCatalog replaces the whole product table. Unlike the
// startup seed this tool does delete rows; it is not part of the
// store's API contract and must never run against a live storefront.
var maintenanceCatalog = []model.SeedEntry{
	{Name: "Margherita", Price: 29.90, Image: "margherita.png"},
	{Name: "Calabresa", Price: 34.90, Image: "calabresa.png"},
	{Name: "Quatro Queijos", Price: 39.90, Image: "quatroqueijos.png"},
}

func main() {
	cfg := app.BootstrapApp()

	// The wholesale wipe would fail on a foreign-key-checked
	// connection once any order references a product, so the tool
	// opens its own connection without the pragma.
	db, err := sqlite.InitMaintenanceDB(&cfg.Database.SQLite)
	if err != nil {
		logger.Fatal("failed to init database", "err", err)
	}
	if err := sqlite.Migrate(db, cfg.Store.AllowDuplicatePhones); err != nil {
		logger.Fatal("failed to migrate schema", "err", err)
	}

	productDao := dao.NewProductDao(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := productDao.DeleteAllProducts(ctx); err != nil {
		logger.Fatal("failed to wipe products", "err", err)
	}
	if err := productDao.SeedCatalog(ctx, maintenanceCatalog); err != nil {
		logger.Fatal("failed to reseed products", "err", err)
	}

	products, err := productDao.ListProducts(ctx)
	if err != nil {
		logger.Fatal("failed to list products", "err", err)
	}
	for _, p := range products {
		logger.Info("product reseeded", "id", p.ID, "name", p.Name, "price", p.Price)
	}
	logger.Info("catalog reseeded successfully", "count", len(products))
}
