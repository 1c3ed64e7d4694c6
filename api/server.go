package api

import (
	"time"

	"github.com/banachtech/mcoption/config"
	"github.com/banachtech/mcoption/pricer"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Pricer runs a Monte Carlo pricing request.
type Pricer interface {
	Simulate(p pricer.Parameters) (*pricer.Result, error)
}

// Server serves HTTP requests for the option pricer.
type Server struct {
	pricer Pricer
	config config.Config
	logger *logrus.Logger
	router *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(cfg config.Config, p Pricer, logger *logrus.Logger) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := &Server{pricer: p, config: cfg, logger: logger}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.New()
	router.Use(gin.Recovery(), server.requestLogger)

	routes := router.Group("/v1")
	if server.config.APIKeyHash != "" {
		routes.Use(server.authentication)
	}
	routes.GET("/defaults", server.defaults)
	routes.POST("/simulate", server.simulate)
	routes.POST("/implied-vol", server.impliedVol)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	server.logger.WithField("address", address).Info("starting pricer api")
	return server.router.Run(address)
}

func (server *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	server.logger.WithFields(logrus.Fields{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start),
	}).Info("request")
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
