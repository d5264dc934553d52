package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/Abdelrahman-cSharp/UShop/internal/application/catalog"
	identityapp "github.com/Abdelrahman-cSharp/UShop/internal/application/identity"
	orderingapp "github.com/Abdelrahman-cSharp/UShop/internal/application/ordering"
	partnerapp "github.com/Abdelrahman-cSharp/UShop/internal/application/partner"
	shoppingapp "github.com/Abdelrahman-cSharp/UShop/internal/application/shopping"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/auth"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/config"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/event"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/logger"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/persistence"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/telemetry"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/handler"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting UShop API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Tracing
	ctx := context.Background()
	tracer, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer", zap.Error(err))
		}
	}()

	// Database
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled {
		if err := db.EnableTracing(); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected")

	// Redis backs the token blacklist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		_ = redisClient.Close()
	}()

	var blacklist auth.TokenBlacklist
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, token revocation disabled", zap.Error(err))
	} else {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Redis connected")
	}
	cancel()

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	sellerRepo := persistence.NewGormSellerRepository(db.DB)
	cardRepo := persistence.NewGormCreditCardRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Event bus for cross-context integration
	eventBus := event.NewInMemoryBus(log)

	// Application services
	authService := identityapp.NewAuthService(userRepo, customerRepo, sellerRepo, jwtService, blacklist, log)
	customerService := partnerapp.NewCustomerService(customerRepo, cardRepo, log)
	sellerService := partnerapp.NewSellerService(sellerRepo, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, log)
	cartService := shoppingapp.NewCartService(cartRepo, productRepo, log)
	checkoutService := orderingapp.NewCheckoutService(orderRepo, cartRepo, customerRepo, cardRepo, productRepo, log)
	checkoutService.SetEventPublisher(eventBus)
	orderService := orderingapp.NewOrderService(orderRepo, log)
	orderService.SetEventPublisher(eventBus)

	// HTTP layer
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}

	engine := router.New(router.Config{
		Logger:         log,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		CORS:           corsConfig,
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: cfg.Telemetry.Enabled,

		System:   handler.NewSystemHandler(db, redisClient, version),
		Auth:     handler.NewAuthHandler(authService),
		Cart:     handler.NewCartHandler(cartService),
		Order:    handler.NewOrderHandler(checkoutService, orderService),
		Product:  handler.NewProductHandler(productService),
		Category: handler.NewCategoryHandler(categoryService),
		Customer: handler.NewCustomerHandler(customerService),
		Seller:   handler.NewSellerHandler(sellerService),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
