// Package http_server assembles the gin engine: middleware, static
// resources and route registration.
package http_server

import (
	"petlify_server/internal/config"
	"petlify_server/internal/handler"
	"petlify_server/internal/infrastructure/logger"
	"petlify_server/internal/infrastructure/middleware"
	"petlify_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init builds the engine. A blank engine is used instead of
// gin.Default() so logging and recovery go through zap.
func Init(handlers *handler.Handlers) *gin.Engine {
	conf := config.GetConfig()

	engine := gin.New()
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// Optional TLS redirect when TLS is not terminated upstream.
	if conf.TLSConfig.RedirectEnabled {
		engine.Use(middleware.TlsHandler(conf.TLSConfig.SSLHost))
	}

	// Uploaded pet images are served from the static upload dir.
	engine.Static("/static/uploads", conf.UploadConfig.StaticUploadPath)

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
