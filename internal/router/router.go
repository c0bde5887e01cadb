package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fittrack/internal/auth"
	"fittrack/internal/config"
	"fittrack/internal/handler"
	"fittrack/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	exerciseHandler *handler.ExerciseHandler,
	programHandler *handler.ProgramHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Binder = validation.NewStrictBinder()
	e.Validator = validation.NewEchoValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/exercise/list", exerciseHandler.List)
	api.GET("/exercise/:id", exerciseHandler.Get)
	api.GET("/program/list", programHandler.List)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", auth.Middleware(cfg.JWTSecret))

	secured.GET("/user", userHandler.Get)
	secured.GET("/user/list", userHandler.List)
	secured.POST("/user/track-exercise", userHandler.TrackExercise)
	secured.GET("/user/track-exercise/list", userHandler.ListTrackedExercises)
	secured.DELETE("/user/track-exercise/:trackId", userHandler.RemoveTrackedExercise)

	// Admin routes (secured plus the admin gate)
	admin := secured.Group("", auth.RequireAdmin)

	admin.POST("/exercise", exerciseHandler.Create)
	admin.PATCH("/exercise/:id", exerciseHandler.Update)
	admin.DELETE("/exercise/:id", exerciseHandler.Delete)
	admin.POST("/exercise/:exerciseId/program/:programId", exerciseHandler.AddToProgram)
	admin.DELETE("/exercise/:exerciseId/program/:programId", exerciseHandler.RemoveFromProgram)
	admin.PATCH("/user/:id", userHandler.Update)
}
