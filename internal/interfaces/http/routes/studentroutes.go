package routes

import (
	"github.com/gin-gonic/gin"

	"coachdesk/internal/interfaces/http/handlers"
	"coachdesk/internal/interfaces/http/middleware"
)

// StudentRouteConfig holds dependencies for student management routes.
type StudentRouteConfig struct {
	StudentHandler *handlers.StudentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupStudentRoutes configures the trainer-facing student CRUD routes.
func SetupStudentRoutes(engine *gin.Engine, cfg *StudentRouteConfig) {
	students := engine.Group("/students", cfg.AuthMiddleware.RequireAuth())
	{
		students.POST("", cfg.StudentHandler.Create)
		students.GET("", cfg.StudentHandler.List)
		students.GET("/:id", cfg.StudentHandler.Get)
		students.PATCH("/:id", cfg.StudentHandler.Update)
		students.DELETE("/:id", cfg.StudentHandler.Delete)
	}
}
