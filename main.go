package main

import (
	"fmt"

	"api_vendas/api"
	"api_vendas/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("error loading configuration: %v", err))
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())

	if err := api.InitRoutes(r, cfg, logger); err != nil {
		panic(fmt.Errorf("error initializing routes: %v", err))
	}

	logger.Info("starting sales API", zap.String("addr", cfg.Addr), zap.String("data_file", cfg.DataFile))
	if err := r.Run(cfg.Addr); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
