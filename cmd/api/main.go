package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/opencourses/courses-api/docs"
	"github.com/opencourses/courses-api/internal/api"
	"github.com/opencourses/courses-api/internal/core/ports"
	"github.com/opencourses/courses-api/internal/core/service"
	mongodb "github.com/opencourses/courses-api/internal/infrastructure/db/mongo"
	redisdb "github.com/opencourses/courses-api/internal/infrastructure/db/redis"
	"github.com/opencourses/courses-api/internal/pkg/config"
	"github.com/opencourses/courses-api/pkg/logger"
)

// @title        Courses API
// @version      1.0
// @description  REST API for user accounts and the courses they own.
// @BasePath     /
// @securityDefinitions.basic BasicAuth
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}
	courseRepo := mongodb.NewCourseRepository(db)

	var rdb *redis.Client
	var cache ports.CourseCache
	if cfg.Redis.Enabled {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, course list cache disabled")
			rdb = nil
		} else {
			cache = redisdb.NewCourseCache(rdb)
			defer rdb.Close()
		}
	}

	userService := service.NewUserService(userRepo, cfg.BcryptCost)
	courseService := service.NewCourseService(courseRepo, cache, log)

	e := api.NewRouter(api.RouterConfig{
		UserService:   userService,
		CourseService: courseService,
		Mongo:         db,
		Redis:         rdb,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
