package router

import (
	"petlify_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerPetRoutes registers the pet catalog endpoints. Browsing is
// public; submission requires authentication; moderation requires an
// administrator.
func (r *Router) registerPetRoutes(rg *gin.RouterGroup) {
	petGroup := rg.Group("/pets")
	{
		petGroup.GET("", r.handlers.Pet.ListPets)
		petGroup.GET("/featured", r.handlers.Pet.FeaturedPets)
		petGroup.GET("/:id", r.handlers.Pet.GetPetByID)

		petGroup.POST("", middleware.JWTAuth(), r.handlers.Pet.SubmitPet)

		petGroup.GET("/pending/submissions",
			middleware.JWTAuth(), middleware.AdminOnly(), r.handlers.Pet.PendingSubmissions)
		petGroup.PUT("/update-status",
			middleware.JWTAuth(), middleware.AdminOnly(), r.handlers.Pet.UpdatePetStatus)
	}
}
