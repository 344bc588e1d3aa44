package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/database"
	"storefront-service/kafka"
	"storefront-service/logger"
	"storefront-service/middleware"
	"storefront-service/routes"
	servicepkg "storefront-service/services"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync() //nolint:errcheck
	lg := logger.Log

	db, err := database.ConnectPostgres(cfg, lg)
	if err != nil {
		lg.Fatal("Failed to connect to catalog database", zap.Error(err))
	}
	defer database.ClosePostgres(db) //nolint:errcheck

	redisClient, err := database.NewRedisClient(cfg.RedisURL, lg)
	if err != nil {
		lg.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close() //nolint:errcheck

	// Event publishing is optional; without brokers confirmations are
	// simply not announced anywhere.
	var publisher servicepkg.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
		lg.Info("Order event publishing enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	} else {
		lg.Info("KAFKA_BROKERS not set, order event publishing disabled")
	}

	// DI chain
	catalogRepo := database.NewGormCatalogRepository(db)
	cartRepo := database.NewRedisCartRepository(redisClient, cfg.CartTTL)
	cartService := servicepkg.NewCartService(cartRepo, catalogRepo, lg)
	authorizer := servicepkg.NewSimulatedAuthorizer(cfg.PaymentDelay)
	checkoutService := servicepkg.NewCheckoutService(cartRepo, authorizer, publisher, cfg.DeliveryEstimate, lg)

	catalogController := controllers.NewCatalogController(catalogRepo, lg)
	cartController := controllers.NewCartController(cartService)
	checkoutController := controllers.NewCheckoutController(checkoutService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// 30-second request timeout; generous enough for the simulated
	// payment delay to always complete
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "storefront-service"})
	})

	routes.RegisterRoutes(r, catalogController, cartController, checkoutController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("Server failed", zap.Error(err))
		}
	}()

	lg.Info("Storefront service started", zap.String("port", cfg.Port))
	<-quit
	lg.Info("Shutting down storefront service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Fatal("Server forced to shutdown", zap.Error(err))
	}
	lg.Info("Server exited cleanly")
}
