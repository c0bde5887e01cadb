package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fittrack/internal/auth"
	"fittrack/internal/cache"
	"fittrack/internal/config"
	"fittrack/internal/db"
	"fittrack/internal/handler"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/router"
	"fittrack/internal/service"
)

// @title Fittrack API
// @version 1.0
// @description Fitness exercise tracking API with programs, tracked sessions and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Schema sync; the uniqueness constraints on user email, program name and
	// exercise name back the service layer's conflict handling.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Program{},
		&model.Exercise{},
		&model.Track{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	programRepo := repository.NewProgramRepository(gormDB)
	exerciseRepo := repository.NewExerciseRepository(gormDB)
	trackRepo := repository.NewTrackRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, exerciseRepo, trackRepo, cacheClient)
	exerciseService := service.NewExerciseService(exerciseRepo, programRepo, cacheClient)
	programService := service.NewProgramService(programRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)
	programHandler := handler.NewProgramHandler(programService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		exerciseHandler,
		programHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
