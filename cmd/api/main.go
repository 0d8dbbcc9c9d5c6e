package main

import (
	"log"

	"parcel-gateway/internal/core/cache"
	"parcel-gateway/internal/core/config"
	"parcel-gateway/internal/core/httpclient"
	"parcel-gateway/internal/core/logger"
	"parcel-gateway/internal/core/server"
	adapter "parcel-gateway/internal/features/shipping/adapters"
	"parcel-gateway/internal/features/shipping/handler"
	"parcel-gateway/internal/features/shipping/ports"
	"parcel-gateway/internal/features/shipping/service"

	"go.uber.org/zap"
)

// @title Parcel Gateway API
// @version 1.0
// @description This API quotes rates, tracks packages and books shipments through the FedEx XML gateway.
// @contact.name API Support
// @contact.email support@parcelgateway.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("fedex_test_mode", cfg.FedEx.TestMode),
	)

	xmlClient, err := httpclient.NewXMLClient(cfg.FedEx.Timeout(), cfg.Proxy)
	if err != nil {
		l.Fatal("Failed to build carrier HTTP client", zap.Error(err))
	}

	fedex := adapter.NewFedExAdapter(cfg.FedEx, xmlClient)
	l.Info("Carrier gateway configured",
		zap.String("carrier", fedex.Name()),
		zap.String("endpoint", adapter.Endpoint(cfg.FedEx.TestMode)),
	)

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	audit := adapter.NewRedisAuditRepository(redisCache, cfg.Redis.AuditTTL())

	shippingSvc := service.NewShippingService([]ports.Carrier{fedex}, audit)
	shippingHdl := handler.NewShippingHandler(shippingSvc)

	srv := server.New(cfg)
	srv.Health(map[string]server.HealthCheck{
		"redis": redisCache.Ping,
	})

	// Register Routes
	shippingHdl.Register(srv.App)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
