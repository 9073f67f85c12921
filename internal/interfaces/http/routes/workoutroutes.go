package routes

import (
	"github.com/gin-gonic/gin"

	"coachdesk/internal/interfaces/http/handlers"
	"coachdesk/internal/interfaces/http/middleware"
)

type WorkoutRouteConfig struct {
	WorkoutHandler *handlers.WorkoutHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupWorkoutRoutes(engine *gin.Engine, cfg *WorkoutRouteConfig) {
	workouts := engine.Group("/workouts", cfg.AuthMiddleware.RequireAuth())
	{
		workouts.POST("", cfg.WorkoutHandler.Create)
		workouts.GET("", cfg.WorkoutHandler.List)
		workouts.GET("/:id", cfg.WorkoutHandler.Get)
		workouts.PATCH("/:id", cfg.WorkoutHandler.Update)
		workouts.DELETE("/:id", cfg.WorkoutHandler.Delete)
		workouts.PUT("/:id/share-password", cfg.WorkoutHandler.SetSharePassword)
	}
}
