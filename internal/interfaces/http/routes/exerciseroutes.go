package routes

import (
	"github.com/gin-gonic/gin"

	"coachdesk/internal/interfaces/http/handlers"
	"coachdesk/internal/interfaces/http/middleware"
)

type ExerciseRouteConfig struct {
	ExerciseHandler *handlers.ExerciseHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupExerciseRoutes(engine *gin.Engine, cfg *ExerciseRouteConfig) {
	exercises := engine.Group("/exercises", cfg.AuthMiddleware.RequireAuth())
	{
		exercises.POST("", cfg.ExerciseHandler.Create)
		exercises.GET("", cfg.ExerciseHandler.List)
		exercises.PATCH("/:id", cfg.ExerciseHandler.Update)
		exercises.DELETE("/:id", cfg.ExerciseHandler.Delete)
	}
}
