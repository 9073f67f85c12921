package routes

import (
	"github.com/gin-gonic/gin"

	"coachdesk/internal/interfaces/http/handlers"
)

// PortalRouteConfig holds dependencies for the public portal routes. These
// routes carry no trainer auth middleware: access control is the
// resource-scoped grant cookie, verified inside the handlers.
type PortalRouteConfig struct {
	PortalHandler *handlers.PortalHandler
}

func SetupPortalRoutes(engine *gin.Engine, cfg *PortalRouteConfig) {
	portal := engine.Group("/portal")
	{
		portal.GET("/students/:id", cfg.PortalHandler.StudentPortal)
		portal.POST("/students/:id/gate", cfg.PortalHandler.StudentGate)
		portal.GET("/students/:id/session", cfg.PortalHandler.Session)

		portal.GET("/workouts/:id", cfg.PortalHandler.SharedWorkout)
		portal.POST("/workouts/:id/gate", cfg.PortalHandler.WorkoutGate)
	}
}
