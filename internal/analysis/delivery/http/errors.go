package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"data-analysis-agents/internal/analysis"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/dataset"
	"data-analysis-agents/internal/session"
	"data-analysis-agents/pkg/response"
)

// respondError translates domain errors into HTTP responses. Validation
// and dataset problems are the client's fault; everything else is a 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, artifact.ErrNotFound),
		errors.Is(err, artifact.ErrInvalidFilename):
		response.NotFound(c, err.Error())
	case errors.Is(err, analysis.ErrPromptRequired),
		errors.Is(err, analysis.ErrNoDataset),
		errors.Is(err, dataset.ErrUnsupportedFormat),
		errors.Is(err, dataset.ErrEmptyDataset),
		errors.Is(err, dataset.ErrRaggedRows):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
