package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/pkg/response"
	"teamboard/pkg/scope"
)

// List godoc
// @Summary     List alerts
// @Description Returns a paginated list of alerts, newest first, with optional filters.
// @Tags        Alert
// @Accept      json
// @Produce     json
// @Param       search        query string false "Match against title and description"
// @Param       type          query string false "Alert type (PUSH, PULL_REQUEST, MERGE, ...)"
// @Param       status        query string false "Alert status (NEW, ACKNOWLEDGED, RESOLVED, DISMISSED)"
// @Param       priority      query string false "Alert priority (LOW, MEDIUM, HIGH, CRITICAL)"
// @Param       branch        query string false "Branch name"
// @Param       repository_id query string false "Tracked repository ID"
// @Param       actionable    query bool   false "Only alerts that demand action"
// @Param       from          query string false "Lower bound on event time (RFC3339)"
// @Param       to            query string false "Upper bound on event time (RFC3339)"
// @Param       page          query int    false "Page number (default: 1)"
// @Param       limit         query int    false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/alerts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Summary godoc
// @Summary     Alert summary
// @Description Returns aggregate alert counts (total, unread, actionable, per type/status/priority) over the same filters as the list.
// @Tags        Alert
// @Accept      json
// @Produce     json
// @Param       search        query string false "Match against title and description"
// @Param       type          query string false "Alert type"
// @Param       status        query string false "Alert status"
// @Param       priority      query string false "Alert priority"
// @Param       branch        query string false "Branch name"
// @Param       repository_id query string false "Tracked repository ID"
// @Param       actionable    query bool   false "Only alerts that demand action"
// @Param       from          query string false "Lower bound on event time (RFC3339)"
// @Param       to            query string false "Upper bound on event time (RFC3339)"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/alerts/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSummaryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Summary(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Detail godoc
// @Summary     Get alert detail
// @Description Returns a single alert with its recipient read state.
// @Tags        Alert
// @Accept      json
// @Produce     json
// @Param       id path string true "Alert ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/alerts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateStatus godoc
// @Summary     Update alert status
// @Description Moves an alert to a new workflow status (NEW, ACKNOWLEDGED, RESOLVED, DISMISSED).
// @Tags        Alert
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Alert ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} updateStatusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/alerts/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateStatusResp(output))
}

// MarkRead godoc
// @Summary     Mark alert as read
// @Description Records the requesting user's read timestamp. Idempotent.
// @Tags        Alert
// @Accept      json
// @Produce     json
// @Param       id path string true "Alert ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Not a recipient"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/alerts/{id}/read [POST]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.MarkRead(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.MarkRead: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete an alert
// @Description Soft-deletes an alert; it disappears from all read surfaces.
// @Tags        Alert
// @Accept      json
// @Produce     json
// @Param       id path string true "Alert ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/alerts/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
