package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nichebay/domain-offer/pkg/config"
	"github.com/nichebay/domain-offer/pkg/metrics"
	"github.com/nichebay/domain-offer/pkg/system"
)

// APIController is one mountable group of API routes.
type APIController interface {
	BasePath() string
	Register(rg *gin.RouterGroup) error
	Handlers() []gin.HandlerFunc
}

// Server wraps the gin engine and the listener configuration.
type Server struct {
	gin    *gin.Engine
	config config.Config
}

// NewServer builds the engine with logging, recovery and the static
// fallback wired in. Controllers are mounted separately via RegisterAll.
func NewServer(log *zap.Logger, cfg config.Config, debug bool, bundle static.ServeFileSystem) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		ginzap.Ginzap(log, time.RFC3339, true),
		ginzap.RecoveryWithZap(log, true),
		system.RequestLogger(log.Sugar()),
	)

	if debug {
		engine.Use(
			cors.New(cors.Config{
				AllowOrigins: []string{"http://localhost:5173", "http://127.0.0.1:8080"},
				AllowMethods: []string{"GET", "POST", "OPTIONS"},
				AllowHeaders: []string{"Origin", "Content-Type"},
				MaxAge:       12 * time.Hour,
			}),
		)
	}

	engine.GET("metrics", metrics.Handler())
	engine.NoRoute(ServeBundle(bundle))

	return &Server{gin: engine, config: cfg}
}

// RegisterAll mounts every controller under the /api group.
func (s *Server) RegisterAll(controllers []APIController) error {
	r := s.gin.Group("api")
	for _, c := range controllers {
		if err := c.Register(r.Group(c.BasePath(), c.Handlers()...)); err != nil {
			return err
		}
	}
	return nil
}

// Engine exposes the underlying gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.gin
}

// Listen serves HTTP on the configured address until the process exits.
func (s *Server) Listen() error {
	return s.gin.Run(s.config.Web.Address)
}
