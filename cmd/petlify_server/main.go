package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"petlify_server/internal/config"
	"petlify_server/internal/dao/mysql"
	myredis "petlify_server/internal/dao/redis"
	"petlify_server/internal/handler"
	"petlify_server/internal/http_server"
	"petlify_server/internal/infrastructure/logger"
	"petlify_server/internal/service"
	"petlify_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration.
	conf := config.GetConfig()

	// 2. Initialize logging.
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger initialized")

	if conf.MainConfig.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Initialize the database and repositories.
	repos := mysql.Init()
	zap.L().Info("mysql initialized")

	// 4. Initialize the cache.
	cache := myredis.Init()
	zap.L().Info("redis initialized")

	// 5. Initialize JWT signing.
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("jwt initialized")

	// 6. Wire services and handlers.
	svc := service.NewServices(repos, cache)
	handlers := handler.NewHandlers(svc)

	// 7. Configure the validator translator.
	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 8. Build the engine and serve.
	engine := http_server.Init(handlers)

	addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	go func() {
		zap.L().Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down server...")
	if err := srv.Close(); err != nil {
		zap.L().Error("server close failed", zap.Error(err))
	}
	zap.L().Info("server stopped")
}
