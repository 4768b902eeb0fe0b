package http

import (
	"github.com/gin-gonic/gin"

	"teamboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All repository routes require an authenticated scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	repos := rg.Group("/repositories")
	{
		repos.POST("", mw.Auth(), h.Link)
		repos.GET("", mw.Auth(), h.List)
		repos.GET("/:id", mw.Auth(), h.Detail)
		repos.PUT("/:id", mw.Auth(), h.UpdateSync)
		repos.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
