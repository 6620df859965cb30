package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/commentbox/comment-system/docs"
	"github.com/commentbox/comment-system/internal/api/handler"
	"github.com/commentbox/comment-system/internal/api/middleware"
	"github.com/commentbox/comment-system/internal/core/ports"
	"github.com/commentbox/comment-system/internal/core/service"
	"github.com/commentbox/comment-system/internal/infrastructure/captcha"
	"github.com/commentbox/comment-system/internal/infrastructure/config"
	mongostore "github.com/commentbox/comment-system/internal/infrastructure/db/mongo"
	redisstore "github.com/commentbox/comment-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered and every component wired through explicit constructor
// injection — nothing reaches for process-global state.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commentbox"))

	// The widget runs on arbitrary third-party origins, so the whole API
	// is deliberately open to cross-origin calls. Echo answers the
	// OPTIONS preflight with headers only.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "HEAD", "POST", "OPTIONS", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// --- Dependencies ---
	siteRepo := mongostore.NewSiteRepository(db)
	commentRepo := mongostore.NewCommentRepository(db)
	sessions := redisstore.NewSessionStore(rdb)
	verifier := captcha.NewTurnstileVerifier(cfg.Turnstile.SecretKey, cfg.Turnstile.VerifyURL, log)

	authService := service.NewAuthService(sessions, cfg.AdminPassword, cfg.SessionTTL, log)
	commentService := service.NewCommentService(siteRepo, commentRepo, verifier, log)
	siteService := service.NewSiteService(siteRepo, commentRepo, log)
	provisionService := service.NewProvisionService(siteRepo, verifier, cfg.Turnstile.WidgetSiteKey, cfg.Quota.SelfServeMaxSize, log)

	registerAPIRoutes(e, authService, siteService, commentService, provisionService)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// registerAPIRoutes mounts the /api surface. Split out from NewRouter so
// the route table can be exercised against stub services.
func registerAPIRoutes(
	e *echo.Echo,
	authService ports.AuthService,
	siteService ports.SiteService,
	commentService ports.CommentService,
	provisionService ports.ProvisionService,
) {
	authHandler := handler.NewAuthHandler(authService)
	siteHandler := handler.NewSiteHandler(siteService)
	commentHandler := handler.NewCommentHandler(commentService)
	provisionHandler := handler.NewProvisionHandler(provisionService)

	admin := middleware.SessionAuth(authService)

	apiGroup := e.Group("/api")
	apiGroup.POST("/auth", authHandler.Login)
	apiGroup.POST("/sites", siteHandler.Create, admin)
	apiGroup.GET("/sites", siteHandler.List, admin)
	apiGroup.DELETE("/sites/:id", siteHandler.Delete, admin)
	apiGroup.POST("/comments", commentHandler.Submit)
	apiGroup.GET("/comments/:site_id", commentHandler.ListBySite)
	apiGroup.DELETE("/comments/:id", commentHandler.Delete, admin)
	apiGroup.POST("/apply-code", provisionHandler.Apply)
}
