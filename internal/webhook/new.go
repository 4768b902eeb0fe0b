package webhook

import (
	"teamboard/internal/gitalert"
	gitrepoRepo "teamboard/internal/gitrepo/repository"
	pkgLog "teamboard/pkg/log"
)

// Handler is the inbound edge of the alert ingestion pipeline.
type Handler struct {
	alertUC      gitalert.UseCase
	gitrepoRepo  gitrepoRepo.Repository
	security     *SecurityValidator
	githubParser *GitHubWebhookParser
	gitlabParser *GitLabWebhookParser
	l            pkgLog.Logger
}

func NewHandler(
	alertUC gitalert.UseCase,
	gitrepoRepo gitrepoRepo.Repository,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		alertUC:      alertUC,
		gitrepoRepo:  gitrepoRepo,
		security:     NewSecurityValidator(securityConfig),
		githubParser: NewGitHubParser(),
		gitlabParser: NewGitLabParser(),
		l:            l,
	}
}
