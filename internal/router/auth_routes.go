package router

import (
	"github.com/gin-gonic/gin"
)

// registerAuthRoutes registers the public identity endpoints.
func (r *Router) registerAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", r.handlers.Auth.Register)
		authGroup.POST("/login", r.handlers.Auth.Login)
	}
}
