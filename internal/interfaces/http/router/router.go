package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/auth"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/handler"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/middleware"
)

// Config carries everything the router needs to assemble the API
type Config struct {
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	CORS           middleware.CORSConfig
	ServiceName    string
	TracingEnabled bool

	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Customer *handler.CustomerHandler
	Seller   *handler.SellerHandler
}

// New builds the gin engine with all middleware and routes wired
func New(cfg Config) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()

	engine.Use(middleware.Recovery(cfg.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(cfg.Logger))
	engine.Use(middleware.CORS(cfg.CORS))
	if cfg.TracingEnabled {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}

	cfg.System.RegisterRoutes(engine)

	api := engine.Group("/api/v1")
	cfg.Auth.RegisterPublicRoutes(api)

	protected := api.Group("", middleware.JWTAuth(middleware.JWTConfig{
		JWTService: cfg.JWTService,
		Blacklist:  cfg.TokenBlacklist,
		Logger:     cfg.Logger,
	}))
	cfg.Auth.RegisterProtectedRoutes(protected)
	cfg.Cart.RegisterRoutes(protected)
	cfg.Order.RegisterRoutes(protected)
	cfg.Product.RegisterRoutes(protected)
	cfg.Category.RegisterRoutes(protected)
	cfg.Customer.RegisterRoutes(protected)
	cfg.Seller.RegisterRoutes(protected)

	return engine
}
