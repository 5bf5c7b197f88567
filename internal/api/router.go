package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookstack/catalog-api/internal/api/handler"
	"github.com/bookstack/catalog-api/internal/api/middleware"
	"github.com/bookstack/catalog-api/internal/core/service"
	mongodb "github.com/bookstack/catalog-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)

	tokens := service.NewTokenIssuer(jwtSecret, service.DefaultTokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	bookService := service.NewBookService(bookRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	protected := middleware.Auth(tokens, userRepo)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("/signup", authHandler.Signup)
	users.POST("/login", authHandler.Login)

	// --- Book routes ---
	books := e.Group("/api/books")
	books.GET("", bookHandler.List)
	books.GET("/:id", bookHandler.Get)
	books.POST("", bookHandler.Create, protected)
	books.PUT("/:id", bookHandler.Update, protected)
	books.DELETE("/:id", bookHandler.Delete, protected)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
