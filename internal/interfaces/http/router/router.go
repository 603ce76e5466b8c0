package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/infrastructure/logger"
)

// Pinger reports liveness of a backing store
type Pinger interface {
	Ping() error
}

// Config holds router wiring options
type Config struct {
	GraphQLPath string
	Playground  bool
	Env         string
}

// New builds the gin engine: logging and recovery middleware, the
// GraphQL endpoint, an optional playground, and the health probe.
func New(log *zap.Logger, db Pinger, graphqlHandler http.Handler, playgroundHandler http.Handler, cfg Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(logger.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	engine.POST(cfg.GraphQLPath, gin.WrapH(graphqlHandler))
	if cfg.Playground && playgroundHandler != nil {
		engine.GET(cfg.GraphQLPath, gin.WrapH(playgroundHandler))
	}

	engine.GET("/healthz", healthz(db))

	return engine
}

func healthz(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.FromContext(c.Request.Context()).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
