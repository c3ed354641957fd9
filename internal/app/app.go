package app

import (
	"net/http"

	"go-payroll/internal/config"
	"go-payroll/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter installs the global middleware shared by every route.
func NewRouter(cfg config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ContextLogger(zap.L().Named("http")))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders("Authorization", "Idempotency-Key", "X-Request-ID")
	corsConfig.AddExposeHeaders("X-Request-ID", "Idempotent-Replayed")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// BuildApp connects infrastructure and registers every module on router.
// The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	if err := cfg.RequireJWTSecret(); err != nil {
		return nil, err
	}

	res, err := connect(cfg, true)
	if err != nil {
		return nil, err
	}
	zap.L().Info("infrastructure ready", zap.Bool("redis", res.rdb != nil))

	if err := registerModules(router, res, cfg.JWTSecret); err != nil {
		res.Close()
		return nil, err
	}

	return res.Close, nil
}
