package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tamiresatyajayanth58/JOB-PORTAL/docs"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/api/handler"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/api/middleware"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/service"
	mongodb "github.com/tamiresatyajayanth58/JOB-PORTAL/internal/infrastructure/db/mongo"
	redisdb "github.com/tamiresatyajayanth58/JOB-PORTAL/internal/infrastructure/db/redis"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/infrastructure/http/handlers"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/pkg/config"
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
	e.Use(echoprometheus.NewMiddleware("jobportal"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	savedRepo := mongodb.NewSavedJobRepository(db)

	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	jobService := service.NewJobService(jobRepo, appRepo, savedRepo, accountRepo, log)
	appService := service.NewApplicationService(appRepo, jobRepo, log)
	savedService := service.NewSavedJobService(savedRepo, jobRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	savedHandler := handler.NewSavedJobHandler(savedService)

	authMW := middleware.Auth(cfg.JWTSecret)
	seekerOnly := middleware.RequireRole(domain.RoleSeeker)
	recruiterOnly := middleware.RequireRole(domain.RoleRecruiter)
	loginLimit := middleware.RateLimit(
		redisdb.NewLoginLimiter(rdb),
		cfg.RateLimit.LoginLimit,
		cfg.RateLimit.LoginWindow,
	)

	api := e.Group("/api")

	// --- Auth routes (run before an identity exists) ---
	auth := api.Group("/auth", loginLimit)
	auth.POST("/signup", authHandler.SeekerSignup)
	auth.POST("/login", authHandler.SeekerLogin)
	auth.POST("/recruiter/signup", authHandler.RecruiterSignup)
	auth.POST("/recruiter/login", authHandler.RecruiterLogin)
	auth.POST("/logout", authHandler.Logout, authMW)

	// --- Jobs ---
	jobs := api.Group("/jobs", authMW)
	jobs.GET("", jobHandler.List)
	jobs.GET("/recruiter", jobHandler.ListOwn, recruiterOnly)
	jobs.POST("", jobHandler.Create, recruiterOnly)
	jobs.DELETE("/:jobId", jobHandler.Delete, recruiterOnly)

	// --- Applications ---
	apps := api.Group("/applications", authMW)
	apps.POST("", appHandler.Apply, seekerOnly)
	apps.GET("/user", appHandler.ListForSeeker, seekerOnly)
	apps.GET("/recruiter", appHandler.ListForRecruiter, recruiterOnly)
	apps.PUT("/:id/status", appHandler.UpdateStatus, recruiterOnly)

	// --- Saved jobs ---
	saved := api.Group("/saved-jobs", authMW, seekerOnly)
	saved.POST("", savedHandler.Save)
	saved.GET("", savedHandler.List)
	saved.DELETE("/:jobId", savedHandler.Remove)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
