package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/blog-api/internal/api/handler"
	"github.com/inkpress/blog-api/internal/api/middleware"
	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/service"
	"github.com/inkpress/blog-api/internal/infrastructure/config"
	mongorepo "github.com/inkpress/blog-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/inkpress/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Connections are owned by the caller; everything else is constructed here
// and injected down.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Repositories ---
	users := mongorepo.NewUserRepository(db)
	posts := mongorepo.NewPostRepository(db)
	comments := mongorepo.NewCommentRepository(db)
	tokens := redisrepo.NewTokenStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(users, tokens, cfg.JWTSecret, cfg.TokenTTL, cfg.RefreshTTL, log)
	postService := service.NewPostService(posts, comments, users, log)
	commentService := service.NewCommentService(comments, posts, users, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	auth := middleware.Auth(cfg.JWTSecret, users)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout, auth)
	authGroup.GET("/me", authHandler.Me, auth)
	authGroup.PUT("/users/:id/deactivate", authHandler.Deactivate, auth, adminOnly)

	// --- Post routes ---
	postGroup := e.Group("/api/posts")
	postGroup.POST("", postHandler.Create, auth)
	postGroup.GET("", postHandler.List)
	postGroup.GET("/:id", postHandler.Get)
	postGroup.PUT("/:id", postHandler.Update, auth)
	postGroup.DELETE("/:id", postHandler.Delete, auth)
	postGroup.POST("/:id/like", postHandler.ToggleLike, auth)

	// --- Comment routes ---
	commentGroup := e.Group("/api/comments")
	commentGroup.POST("", commentHandler.Add, auth)
	commentGroup.GET("", commentHandler.List)
	commentGroup.PUT("/:id", commentHandler.Update, auth)
	commentGroup.DELETE("/:id", commentHandler.Delete, auth)
	commentGroup.POST("/:id/like", commentHandler.ToggleLike, auth)
	commentGroup.PUT("/:id/approve", commentHandler.Approve, auth, adminOnly)

	// --- Operational routes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
