package http

import (
	"github.com/gin-gonic/gin"

	"data-analysis-agents/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a dataset with natural language
// @Description Routes the prompt to the best-suited agent (pdf/ppt/dashboard/data_analysis). Upload a file to start a new session, or pass session_id to continue one.
// @Tags        Analysis
// @Accept      multipart/form-data
// @Produce     json
// @Param       prompt     formData string true  "Natural language request"
// @Param       file       formData file   false "Dataset file (csv, tsv, txt, xlsx)"
// @Param       session_id formData string false "Existing session ID"
// @Param       agent_type formData string false "Force an agent (pdf, ppt, dashboard, data_analysis, auto)"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// History godoc
// @Summary     Get session history
// @Description Returns the session's recorded interaction turns, oldest first.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	entries, err := h.uc.History(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(id, entries))
}

// ClearHistory godoc
// @Summary     Clear session history
// @Description Clears the session's history and response cache.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id}/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearHistory(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// ClearCache godoc
// @Summary     Clear session response cache
// @Description Clears the session's response cache; history is kept, so identical questions recompute.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id}/cache [DELETE]
func (h *handler) ClearCache(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearCache(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.ClearCache: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// AgentInfo godoc
// @Summary     Describe session agents
// @Description Lists the session's agent categories with their toolsets and conversation stats.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} agentInfoResp
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id}/agents [GET]
func (h *handler) AgentInfo(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.AgentInfo(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.AgentInfo: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAgentInfoResp(output))
}

// Download godoc
// @Summary     Download a generated artifact
// @Description Serves a generated file (chart, report, deck, dashboard, table) by filename.
// @Tags        Downloads
// @Produce     octet-stream
// @Param       filename path string true "Artifact filename"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /download/{filename} [GET]
func (h *handler) Download(c *gin.Context) {
	path, err := h.uc.ResolveDownload(c.Param("filename"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.FileAttachment(path, c.Param("filename"))
}
