// Package main is the entry point for the payment proxy.
// It loads configuration, wires the gateway client and services,
// and starts the HTTP server.
package main

import (
	"context"
	stdlog "log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"rifapix/internal/config"
	"rifapix/internal/gateway"
	"rifapix/internal/handlers"
	"rifapix/internal/logger"
	"rifapix/internal/metrics"
	"rifapix/internal/routes"
	"rifapix/internal/services/payment"
	"rifapix/internal/services/pricing"
	"rifapix/internal/storage"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	env := config.GetEnv("ENV", "development")
	log, err := logger.New("pix-payment-proxy", env, config.IsProduction())
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	// Gateway credentials come from deployment configuration only and are
	// required up front; there is no point serving the form without them.
	gatewayClient := gateway.NewClient(gateway.Config{
		BaseURL:   config.GetEnv("GATEWAY_URL", "https://api.boltpagamentos.com.br"),
		PublicKey: config.MustGetEnv("GATEWAY_PUBLIC_KEY"),
		SecretKey: config.MustGetEnv("GATEWAY_SECRET_KEY"),
		Timeout:   config.GetDurationEnv("GATEWAY_TIMEOUT", 10*time.Second),
	}, log)

	// The limiter store comes up before the metrics sidecar so /healthz
	// can report on it.
	var limiterStore *storage.RedisStorage
	if addr := config.GetEnv("REDIS_ADDR", ""); addr != "" {
		limiterStore, err = storage.NewRedis(addr, config.GetEnv("REDIS_PASSWORD", ""), config.GetIntEnv("REDIS_DB", 0))
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = limiterStore.Close() }()
		log.Info("✅ redis-backed rate limiter enabled", zap.String("addr", addr))
	}

	collector := metrics.NewCollector()
	metricsSrv := metrics.StartServer(config.GetEnv("METRICS_PORT", "9090"), func(ctx context.Context) error {
		if limiterStore != nil {
			return limiterStore.Ping(ctx)
		}
		return nil
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(ctx)
	}()

	paymentService := payment.NewService(gatewayClient, payment.Config{
		BuyerName:  config.GetEnv("BUYER_NAME", "Cliente Rifa"),
		BuyerEmail: config.GetEnv("BUYER_EMAIL", "cliente@rifa.example.com"),
	}, log, collector)

	pricingService := pricing.NewService(pricing.Config{
		UnitPriceCents: config.GetIntEnv("TICKET_PRICE_CENTS", pricing.DefaultUnitPriceCents),
	})

	// Create Fiber app
	app := fiber.New()

	app.Use(recover.New())

	// CORS middleware; the proxy is usually same-origin but preflights
	// still arrive from local development setups.
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Rate limit charge creation per client IP. GET /payment stays open
	// for liveness checks.
	limiterCfg := limiter.Config{
		Max:        config.GetIntEnv("PAYMENT_RATE_LIMIT", 10),
		Expiration: config.GetDurationEnv("PAYMENT_RATE_WINDOW", 1*time.Minute),
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodPost
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Muitas tentativas. Aguarde um instante e tente novamente.",
			})
		},
	}
	if limiterStore != nil {
		limiterCfg.Storage = limiterStore
	}
	app.Use("/payment", limiter.New(limiterCfg))

	// Routes
	paymentHandler := handlers.NewPaymentHandler(paymentService, pricingService, log)
	raffleHandler := handlers.NewRaffleHandler(pricingService)
	routes.SetupRoutes(app, paymentHandler, raffleHandler)

	port := config.GetEnv("PORT", "3000")
	log.Info("✅ payment proxy listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
