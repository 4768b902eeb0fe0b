package http

import (
	"github.com/gin-gonic/gin"

	"teamboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All alert routes require an authenticated scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	alerts := rg.Group("/alerts")
	{
		alerts.GET("", mw.Auth(), h.List)
		alerts.GET("/summary", mw.Auth(), h.Summary)
		alerts.GET("/:id", mw.Auth(), h.Detail)
		alerts.PATCH("/:id/status", mw.Auth(), h.UpdateStatus)
		alerts.POST("/:id/read", mw.Auth(), h.MarkRead)
		alerts.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
