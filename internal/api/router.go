package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencourses/courses-api/internal/api/handler"
	"github.com/opencourses/courses-api/internal/api/middleware"
	"github.com/opencourses/courses-api/internal/core/ports"
)

// RouterConfig carries everything the router needs. Mongo and Redis are only
// used by the readiness probe; Redis may be nil when the cache is disabled.
type RouterConfig struct {
	UserService   ports.UserService
	CourseService ports.CourseService
	Mongo         *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("courses"))

	// --- Dependencies ---
	userHandler := handler.NewUserHandler(cfg.UserService)
	courseHandler := handler.NewCourseHandler(cfg.CourseService)
	requireAuth := middleware.BasicAuth(cfg.UserService)

	// --- User routes ---
	e.GET("/users", userHandler.GetCurrent, requireAuth)
	e.POST("/users", userHandler.Create)

	// --- Course routes ---
	e.GET("/courses", courseHandler.List)
	e.GET("/courses/:id", courseHandler.Get)
	e.POST("/courses", courseHandler.Create, requireAuth)
	e.PUT("/courses/:id", courseHandler.Update, requireAuth)
	e.DELETE("/courses/:id", courseHandler.Delete, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
