package httpserver

import (
	"context"

	"teamboard/internal/gitalert"
	gitrepoRepo "teamboard/internal/gitrepo/repository/postgre"
	"teamboard/internal/webhook"
)

// setupWebhookRoutes registers the provider webhook receivers. They sit
// outside /api/v1: providers authenticate with signatures, not bearer tokens.
func (srv HTTPServer) setupWebhookRoutes(ctx context.Context, alertUC gitalert.UseCase) error {
	if !srv.webhookConfig.Enabled {
		srv.l.Infof(ctx, "Webhook ingestion disabled, skipping webhook routes")
		return nil
	}

	repos := gitrepoRepo.New(srv.postgresDB, srv.l)

	h := webhook.NewHandler(alertUC, repos, webhook.SecurityConfig{
		GitHubSecret:    srv.webhookConfig.GitHubSecret,
		GitLabToken:     srv.webhookConfig.GitLabToken,
		AllowedIPs:      srv.webhookConfig.AllowedIPs,
		RateLimitPerMin: srv.webhookConfig.RateLimitPerMin,
	}, srv.l)

	srv.gin.POST("/webhook/github", h.HandleGitHubWebhook)
	srv.gin.POST("/webhook/gitlab", h.HandleGitLabWebhook)

	srv.l.Infof(ctx, "Webhook routes registered at POST /webhook/github, /webhook/gitlab")
	return nil
}
