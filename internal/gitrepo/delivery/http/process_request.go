package http

import (
	"github.com/gin-gonic/gin"
)

// processLinkReq binds and validates the link repository request body.
func (h *handler) processLinkReq(c *gin.Context) (linkReq, error) {
	var req linkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list repositories query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateSyncReq binds the update body and the URI param.
func (h *handler) processUpdateSyncReq(c *gin.Context) (updateSyncReq, error) {
	var req updateSyncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
