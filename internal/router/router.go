// Package router registers the HTTP routes.
package router

import (
	"petlify_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router holds the handler aggregate and registers every route group.
type Router struct {
	handlers *handler.Handlers
}

// NewRouter creates a Router.
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes registers all route groups on the engine.
func (r *Router) RegisterRoutes(engine *gin.Engine) {
	api := engine.Group("/api")

	r.registerAuthRoutes(api)
	r.registerPetRoutes(api)
	r.registerAdoptionRoutes(api)
}
