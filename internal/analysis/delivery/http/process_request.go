package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"data-analysis-agents/internal/analysis"
)

// maxUploadBytes caps uploaded dataset size at 20 MiB.
const maxUploadBytes = 20 << 20

type analyzeReq struct {
	Prompt    string `form:"prompt" binding:"required"`
	AgentType string `form:"agent_type"`
	SessionID string `form:"session_id"`

	fileName    string
	fileContent []byte
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		SessionID:   r.SessionID,
		Prompt:      r.Prompt,
		AgentType:   r.AgentType,
		FileName:    r.fileName,
		FileContent: r.fileContent,
	}
}

// processAnalyzeReq binds the multipart analyze request: required prompt,
// optional agent_type, session_id, and data file.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		// no file part is fine; the session_id path covers it
		return req, nil
	}
	if fileHeader.Size > maxUploadBytes {
		return req, fmt.Errorf("file too large: %d bytes (max %d)", fileHeader.Size, maxUploadBytes)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return req, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return req, fmt.Errorf("read upload: %w", err)
	}

	req.fileName = fileHeader.Filename
	req.fileContent = content
	return req, nil
}
