package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the analysis API onto the versioned router group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/analyze", h.Analyze)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id/history", h.History)
		sessions.DELETE("/:id/history", h.ClearHistory)
		sessions.DELETE("/:id/cache", h.ClearCache)
		sessions.GET("/:id/agents", h.AgentInfo)
	}
}

// RegisterDownloadRoute maps the artifact download endpoint at the root
// so generated links stay short.
func RegisterDownloadRoute(r gin.IRouter, h Handler) {
	r.GET("/download/:filename", h.Download)
}
