package http

import (
	"github.com/gin-gonic/gin"

	"teamboard/internal/gitrepo"
	"teamboard/pkg/log"
)

// Handler is the public interface for the repository HTTP delivery layer.
type Handler interface {
	Link(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	UpdateSync(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc gitrepo.UseCase
}

// New creates a new HTTP handler for the repository domain.
func New(l log.Logger, uc gitrepo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
