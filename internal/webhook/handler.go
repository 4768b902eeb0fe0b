package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teamboard/internal/gitalert"
	gitrepoRepo "teamboard/internal/gitrepo/repository"
	"teamboard/internal/model"
	pkgResponse "teamboard/pkg/response"
)

// HandleGitHubWebhook processes GitHub webhook deliveries.
// @Summary     GitHub webhook receiver
// @Description Receives GitHub webhook events, verifies the HMAC signature and feeds the alert pipeline.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event header string true "GitHub event name"
// @Param       X-Hub-Signature-256 header string true "HMAC-SHA256 signature"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Invalid signature"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Router      /webhook/github [POST]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Raw bytes are needed for signature verification before any parsing.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "GitHub webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	// Resolve the tracked repository first: its webhook secret (when set)
	// takes precedence over the global one during verification.
	secret := h.repoSecret(ctx, model.ProviderGitHub, body, h.githubParser.ParseRepoIdentity)

	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateGitHubSignature(body, signature, secret); err != nil {
		h.l.Errorf(ctx, "GitHub signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	eventType := c.GetHeader("X-GitHub-Event")
	deliveryID := c.GetHeader("X-GitHub-Delivery")

	var event *model.NormalizedEvent
	switch eventType {
	case "push":
		event, err = h.githubParser.ParsePushEvent(body)
	case "pull_request":
		event, err = h.githubParser.ParsePullRequestEvent(body)
	case "workflow_run":
		event, err = h.githubParser.ParseWorkflowRunEvent(body)
	case "check_run":
		event, err = h.githubParser.ParseCheckRunEvent(body)
	case "issue_comment":
		event, err = h.githubParser.ParseIssueCommentEvent(body)
	case "pull_request_review_comment":
		event, err = h.githubParser.ParseReviewCommentEvent(body)
	case "deployment_status":
		event, err = h.githubParser.ParseDeploymentStatusEvent(body)
	default:
		h.l.Infof(ctx, "Unsupported GitHub event type: %s", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	if err != nil {
		// Malformed payloads are discarded, never bounced back with detail.
		h.l.Errorf(ctx, "Failed to parse GitHub event (delivery %s): %v", deliveryID, err)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unparseable payload"})
		return
	}
	event.DeliveryID = deliveryID

	// Process in background: a disconnecting sender does not abort ingestion.
	go h.processWebhookAsync(*event)

	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// HandleGitLabWebhook processes GitLab webhook deliveries.
// @Summary     GitLab webhook receiver
// @Description Receives GitLab webhook events, verifies the secret token and feeds the alert pipeline.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Gitlab-Event header string true "GitLab event name"
// @Param       X-Gitlab-Token header string true "Shared secret token"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Invalid token"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Router      /webhook/gitlab [POST]
func (h *Handler) HandleGitLabWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "GitLab webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.security.CheckRateLimit("gitlab"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	secret := h.repoSecret(ctx, model.ProviderGitLab, body, h.gitlabParser.ParseRepoIdentity)

	token := c.GetHeader("X-Gitlab-Token")
	if err := h.security.ValidateGitLabToken(token, secret); err != nil {
		h.l.Errorf(ctx, "GitLab token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	eventType := c.GetHeader("X-Gitlab-Event")
	deliveryID := c.GetHeader("X-Gitlab-Event-UUID")

	var event *model.NormalizedEvent
	switch eventType {
	case "Push Hook":
		event, err = h.gitlabParser.ParsePushEvent(body)
	case "Merge Request Hook":
		event, err = h.gitlabParser.ParseMergeRequestEvent(body)
	case "Pipeline Hook":
		event, err = h.gitlabParser.ParsePipelineEvent(body)
	case "Note Hook":
		event, err = h.gitlabParser.ParseNoteEvent(body)
	default:
		h.l.Infof(ctx, "Unsupported GitLab event type: %s", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	if err != nil {
		h.l.Errorf(ctx, "Failed to parse GitLab event (delivery %s): %v", deliveryID, err)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unparseable payload"})
		return
	}
	event.DeliveryID = deliveryID

	go h.processWebhookAsync(*event)

	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// repoSecret pre-parses the repository identity and returns the tracked
// repository's own webhook secret, or "" to fall back to the global one.
func (h *Handler) repoSecret(
	ctx context.Context,
	provider model.Provider,
	body []byte,
	parseIdentity func([]byte) (repoIdentity, error),
) string {
	identity, err := parseIdentity(body)
	if err != nil {
		return ""
	}
	rep, err := h.gitrepoRepo.GetOneRepository(ctx, gitrepoRepo.GetOneRepositoryOptions{
		Provider:   string(provider),
		RemoteURL:  identity.RemoteURL,
		ExternalID: identity.ExternalID,
	})
	if err != nil || rep.ID == "" {
		return ""
	}
	return rep.WebhookSecret
}

// processWebhookAsync runs ingestion detached from the request lifecycle.
func (h *Handler) processWebhookAsync(event model.NormalizedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	h.l.Infof(ctx, "Processing webhook async: %s from %s/%s",
		event.Type, event.Provider, event.RepoFullName)

	output, err := h.alertUC.Ingest(ctx, gitalert.IngestInput{Event: event})
	if err != nil {
		if errors.Is(err, gitalert.ErrOrphanEvent) {
			// Already logged as a warning by the use case.
			return
		}
		h.l.Errorf(ctx, "Webhook ingestion failed: %v", err)
		return
	}

	if !output.Created {
		h.l.Infof(ctx, "Duplicate delivery absorbed for repo %s", event.RepoFullName)
		return
	}
	h.l.Infof(ctx, "Alert %s created with %d recipients", output.Alert.ID, output.Recipients)
}
