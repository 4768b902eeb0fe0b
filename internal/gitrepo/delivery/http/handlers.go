package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/pkg/response"
	"teamboard/pkg/scope"
)

// Link godoc
// @Summary     Link a repository
// @Description Attaches an external GitHub/GitLab repository to a project for webhook ingestion and metadata sync.
// @Tags        Repository
// @Accept      json
// @Produce     json
// @Param       body body linkReq true "Repository data"
// @Success     200 {object} linkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Remote already linked"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/repositories [POST]
func (h *handler) Link(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processLinkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Link(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Link: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newLinkResp(output))
}

// List godoc
// @Summary     List repositories
// @Description Returns a paginated list of tracked repositories.
// @Tags        Repository
// @Accept      json
// @Produce     json
// @Param       project_id query string false "Filter by project"
// @Param       provider   query string false "Filter by provider (GITHUB/GITLAB)"
// @Param       page       query int    false "Page number (default: 1)"
// @Param       limit      query int    false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/repositories [GET]
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

// Detail godoc
// @Summary     Get repository detail
// @Description Returns a single tracked repository by its ID.
// @Tags        Repository
// @Accept      json
// @Produce     json
// @Param       id path string true "Repository ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/repositories/{id} [GET]
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

// UpdateSync godoc
// @Summary     Update sync configuration
// @Description Updates credentials, sync interval or enabled flag. All fields are optional (partial update).
// @Tags        Repository
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Repository ID"
// @Param       body body updateSyncReq true "Fields to update"
// @Success     200 {object} updateSyncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/repositories/{id} [PUT]
func (h *handler) UpdateSync(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateSync(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSync: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateSyncResp(output))
}

// Delete godoc
// @Summary     Unlink a repository
// @Description Soft-deletes a tracked repository. Existing alerts are kept.
// @Tags        Repository
// @Accept      json
// @Produce     json
// @Param       id path string true "Repository ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/repositories/{id} [DELETE]
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
