package app

import (
	"log"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/config"
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/logger"
)

func BootstrapApp() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	logger.Info("Application bootstrapped successfully")

	return cfg
}
