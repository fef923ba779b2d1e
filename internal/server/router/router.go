package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pasturelab/grazeplan/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.PlanningHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	tenants := r.Group("/tenants/:tenantID")
	{
		tenants.POST("/session", handler.LoadSession)
		tenants.GET("/session", handler.GetSession)
		tenants.PUT("/session/herd", handler.UpdateHerd)
		tenants.PUT("/session/horizon", handler.SetHorizon)
		tenants.PUT("/session/paddocks/:paddockID", handler.UpdatePaddock)
		tenants.POST("/paddocks/:paddockID/seeding", handler.SaveSeeding)
		tenants.POST("/paddocks/:paddockID/amendments", handler.SaveAmendment)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
