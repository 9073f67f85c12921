package routes

import (
	"github.com/gin-gonic/gin"

	"coachdesk/internal/interfaces/http/handlers"
	"coachdesk/internal/interfaces/http/middleware"
)

type ScheduleRouteConfig struct {
	ScheduleHandler *handlers.ScheduleHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupScheduleRoutes(engine *gin.Engine, cfg *ScheduleRouteConfig) {
	appointments := engine.Group("/appointments", cfg.AuthMiddleware.RequireAuth())
	{
		appointments.POST("", cfg.ScheduleHandler.Book)
		appointments.GET("", cfg.ScheduleHandler.List)
		appointments.POST("/:id/complete", cfg.ScheduleHandler.Complete)
		appointments.POST("/:id/cancel", cfg.ScheduleHandler.Cancel)
	}
}
