package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/api/middleware"
	v1 "github.com/rbnssalles-rbns/Projeto-Pizzaria/api/v1"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/assets"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao/redis"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/dao/sqlite"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/model"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/service"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/internal/session"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/app"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/logger"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/utils"
)

func main() {
	cfg := app.BootstrapApp()

	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	// Storage: open/create the database file, ensure schema, seed the
	// baseline menu. All idempotent on restart.
	db, err := sqlite.InitDB(&cfg.Database.SQLite)
	if err != nil {
		logger.Fatal("failed to init database", "err", err)
	}
	if err := sqlite.Migrate(db, cfg.Store.AllowDuplicatePhones); err != nil {
		logger.Fatal("failed to migrate schema", "err", err)
	}

	customerDao := dao.NewCustomerDao(db)
	productDao := dao.NewProductDao(db)
	orderDao := dao.NewOrderDao(db)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := productDao.SeedCatalog(seedCtx, model.DefaultCatalog); err != nil {
		cancel()
		logger.Fatal("failed to seed catalog", "err", err)
	}
	cancel()

	// Session store for per-visit cart and identification state.
	rdb, err := redis.InitRedis(&cfg.Database.Redis)
	if err != nil {
		logger.Fatal("failed to init redis", "err", err)
	}
	sessions := session.NewRedisStore(rdb, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	images := assets.NewResolver(cfg.Store.ImageDirs...)
	customerService := service.NewCustomerService(customerDao)
	catalogService := service.NewCatalogService(productDao, images)
	orderService := service.NewOrderService(orderDao, customerDao, productDao)

	r := gin.Default()
	r.Use(middleware.GlobalRateLimit(cfg))
	r.Use(middleware.SessionMiddleware(&cfg.Session))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "pizzaria is running",
		})
	})

	// Landing payload with the WhatsApp contact deep link.
	r.GET("/", func(c *gin.Context) {
		v1.RespondMsg(c, http.StatusOK, e.SUCCESS, "Bem-vindo à Pizzaria Rubens!", gin.H{
			"whatsapp_link": utils.WhatsAppLink(cfg.WhatsApp.Number, utils.WhatsAppContactMessage),
		})
	})

	customerHandler := v1.NewCustomerHandler(customerService, orderService, sessions)
	catalogHandler := v1.NewCatalogHandler(catalogService)
	cartHandler := v1.NewCartHandler(catalogService, sessions)
	orderHandler := v1.NewOrderHandler(orderService, sessions, cfg.WhatsApp.Number)

	api := r.Group("/api/v1")
	{
		customerHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)
		cartHandler.RegisterRoutes(api)
		orderHandler.RegisterRoutes(api)
	}

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Pizzaria storefront starting on " + serverAddr)
	if err := r.Run(serverAddr); err != nil {
		logger.Error("Failed to start server", "err", err)
	}
}
