package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list alerts query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSummaryReq binds and validates the summary query parameters.
func (h *handler) processSummaryReq(c *gin.Context) (summaryReq, error) {
	var req summaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateStatusReq binds the status body and the URI param.
func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, error) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
