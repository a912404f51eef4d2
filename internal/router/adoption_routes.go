package router

import (
	"petlify_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerAdoptionRoutes registers the adoption workflow endpoints.
// The admin group carries AdminOnly as the outer gate; the services
// re-check the principal so authorization never depends on routing
// alone.
func (r *Router) registerAdoptionRoutes(rg *gin.RouterGroup) {
	adoptionGroup := rg.Group("/adoptions", middleware.JWTAuth())
	{
		adoptionGroup.POST("", r.handlers.Adoption.SubmitRequest)
		adoptionGroup.GET("/my-requests", r.handlers.Adoption.MyRequests)

		adminGroup := adoptionGroup.Group("", middleware.AdminOnly())
		{
			adminGroup.GET("/all", r.handlers.Adoption.AllRequests)
			adminGroup.GET("/pending", r.handlers.Adoption.PendingRequests)
			adminGroup.PUT("/update-status", r.handlers.Adoption.UpdateStatus)
		}
	}
}
