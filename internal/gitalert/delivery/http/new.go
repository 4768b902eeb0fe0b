package http

import (
	"github.com/gin-gonic/gin"

	"teamboard/internal/gitalert"
	"teamboard/pkg/log"
)

// Handler is the public interface for the alert HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Summary(c *gin.Context)
	Detail(c *gin.Context)
	UpdateStatus(c *gin.Context)
	MarkRead(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc gitalert.UseCase
}

// New creates a new HTTP handler for the alert domain.
func New(l log.Logger, uc gitalert.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
