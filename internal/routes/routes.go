package routes

import (
	"github.com/gin-gonic/gin"

	"ats_backend/internal/handlers"
)

// RegisterRoutes mounts every endpoint. Registration, login, token refresh,
// job reads and job search stay anonymous; everything else requires a valid
// access token.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, authMW gin.HandlerFunc) {
	public := router.Group("/")
	{
		h.Auth.RegisterRoutes(public)
		h.Job.RegisterRoutes(public, authMW)
	}

	protected := router.Group("/")
	protected.Use(authMW)
	{
		h.Profile.RegisterRoutes(protected)
		h.Resume.RegisterRoutes(protected)
		h.Application.RegisterRoutes(protected)
		h.Dashboard.RegisterRoutes(protected)
	}
}
