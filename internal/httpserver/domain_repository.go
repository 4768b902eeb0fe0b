package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	repoHTTP "teamboard/internal/gitrepo/delivery/http"
	repoRepo "teamboard/internal/gitrepo/repository/postgre"
	repoUC "teamboard/internal/gitrepo/usecase"
	"teamboard/internal/middleware"
	projectRepo "teamboard/internal/project/repository/postgre"
)

// setupRepositoryDomain initializes the repository domain and registers its
// routes.
func (srv HTTPServer) setupRepositoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := repoRepo.New(srv.postgresDB, srv.l)
	projects := projectRepo.New(srv.postgresDB, srv.l)

	uc := repoUC.New(repo, projects, srv.l)

	h := repoHTTP.New(srv.l, uc)
	repoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Repository domain registered")
	return nil
}
