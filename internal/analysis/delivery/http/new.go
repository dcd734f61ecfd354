package http

import (
	"github.com/gin-gonic/gin"

	"data-analysis-agents/internal/analysis"
	"data-analysis-agents/pkg/log"
)

// Handler is the interface for the analysis HTTP delivery handler.
type Handler interface {
	Analyze(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
	ClearCache(c *gin.Context)
	AgentInfo(c *gin.Context)
	Download(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analysis.UseCase
}

// New creates the HTTP handler for the analysis domain.
func New(l log.Logger, uc analysis.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
