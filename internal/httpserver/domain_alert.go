package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"teamboard/internal/gitalert"
	alertHTTP "teamboard/internal/gitalert/delivery/http"
	alertRepo "teamboard/internal/gitalert/repository/postgre"
	alertUC "teamboard/internal/gitalert/usecase"
	gitrepoRepo "teamboard/internal/gitrepo/repository/postgre"
	"teamboard/internal/middleware"
	projectRepo "teamboard/internal/project/repository/postgre"
	userRepo "teamboard/internal/user/repository/postgre"
)

// setupAlertDomain initializes the alert domain and registers its routes.
// The use case is returned so the webhook edge can share it.
func (srv HTTPServer) setupAlertDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (gitalert.UseCase, error) {
	repo := alertRepo.New(srv.postgresDB, srv.l)
	repos := gitrepoRepo.New(srv.postgresDB, srv.l)
	projects := projectRepo.New(srv.postgresDB, srv.l)
	users := userRepo.New(srv.postgresDB, srv.l)

	policy := alertUC.NewProjectMembersPolicy(projects, srv.l)

	uc := alertUC.New(repo, repos, users, policy, alertUC.Config{
		DedupCacheSize: srv.webhookConfig.DedupCacheSize,
		DedupCacheTTL:  srv.webhookConfig.DedupCacheTTL,
	}, srv.l)

	h := alertHTTP.New(srv.l, uc)
	alertHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Alert domain registered")
	return uc, nil
}
