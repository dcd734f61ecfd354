package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	analysisHTTP "data-analysis-agents/internal/analysis/delivery/http"
	"data-analysis-agents/internal/middleware"
	"data-analysis-agents/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Analysis domain
	analysisHandler analysisHTTP.Handler

	// Cross-cutting middleware
	mw middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Analysis domain
	AnalysisHandler analysisHTTP.Handler

	// Cross-cutting middleware
	Middleware middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		analysisHandler: cfg.AnalysisHandler,
		mw:              cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.analysisHandler == nil {
		return errors.New("analysis handler is required")
	}
	return nil
}
