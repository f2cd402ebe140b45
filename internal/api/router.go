package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devmarket/devmarket-api/internal/api/handler"
	"github.com/devmarket/devmarket-api/internal/api/middleware"
	"github.com/devmarket/devmarket-api/internal/core/service"
	mongodb "github.com/devmarket/devmarket-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devmarket/devmarket-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/devmarket/devmarket-api/internal/infrastructure/http/handlers"
	"github.com/devmarket/devmarket-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("devmarket"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	listingRepo := mongodb.NewListingRepository(db)
	profileCache := redisdb.NewProfileCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	profileService := service.NewProfileService(profileRepo, userRepo, profileCache, log)
	listingService := service.NewListingService(listingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	listingHandler := handler.NewListingHandler(listingService)
	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Account routes ---
	e.POST("/api/users", authHandler.Register)
	e.GET("/api/users", authHandler.ListUsers, authRequired)
	e.POST("/api/auth", authHandler.Login)

	// --- Profile routes ---
	e.GET("/api/profile/me", profileHandler.GetMine, authRequired)
	e.POST("/api/profile", profileHandler.Upsert, authRequired)
	e.GET("/api/profile", profileHandler.ListAll)
	e.GET("/api/profile/user/:user_id", profileHandler.GetByUser)
	e.DELETE("/api/profile", profileHandler.DeleteMine, authRequired)
	e.PUT("/api/profile/exp", profileHandler.AddExperience, authRequired)
	e.DELETE("/api/profile/exp/:exp_id", profileHandler.RemoveExperience, authRequired)

	// --- Listing routes ---
	e.POST("/api/products", listingHandler.Create, authRequired)
	e.GET("/api/products", listingHandler.List)
	e.GET("/api/products/:product_id", listingHandler.Get)
	e.PUT("/api/products/update/:product_id", listingHandler.Update, authRequired)
	e.DELETE("/api/products/delete/:product_id", listingHandler.Delete, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
