package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"teamboard/internal/model"
)

// GitHubWebhookParser normalizes GitHub webhook payloads.
type GitHubWebhookParser struct{}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{}
}

// githubRepo is the repository block common to all GitHub event payloads.
type githubRepo struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

func (r githubRepo) identity() repoIdentity {
	return repoIdentity{ExternalID: r.ID, FullName: r.FullName, RemoteURL: r.HTMLURL}
}

// ParseRepoIdentity extracts only the repository block, enough to resolve the
// tracked repository before full parsing.
func (p *GitHubWebhookParser) ParseRepoIdentity(payload []byte) (repoIdentity, error) {
	var event struct {
		Repository githubRepo `json:"repository"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return repoIdentity{}, fmt.Errorf("failed to parse repository block: %w", err)
	}
	if event.Repository.FullName == "" && event.Repository.ID == 0 {
		return repoIdentity{}, fmt.Errorf("payload carries no repository identity")
	}
	return event.Repository.identity(), nil
}

// ParsePushEvent normalizes a GitHub push event.
func (p *GitHubWebhookParser) ParsePushEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		Ref        string     `json:"ref"`
		Compare    string     `json:"compare"`
		Repository githubRepo `json:"repository"`
		Pusher     struct {
			Name string `json:"name"`
		} `json:"pusher"`
		HeadCommit struct {
			ID        string    `json:"id"`
			Message   string    `json:"message"`
			URL       string    `json:"url"`
			Timestamp time.Time `json:"timestamp"`
		} `json:"head_commit"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse push event: %w", err)
	}

	return p.normalized(event.Repository, model.NormalizedEvent{
		Type:          model.AlertTypePush,
		Title:         fmt.Sprintf("Push to %s", branchFromRef(event.Ref)),
		Description:   event.HeadCommit.Message,
		Branch:        branchFromRef(event.Ref),
		Commit:        event.HeadCommit.ID,
		ExternalURL:   firstNonEmpty(event.HeadCommit.URL, event.Compare),
		ActorUsername: event.Pusher.Name,
		EventAt:       event.HeadCommit.Timestamp,
	}), nil
}

// ParsePullRequestEvent normalizes a GitHub pull_request event.
// A closed-and-merged PR maps to the merge category.
func (p *GitHubWebhookParser) ParsePullRequestEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		Action      string `json:"action"` // opened, closed, reopened, etc.
		Number      int    `json:"number"`
		PullRequest struct {
			Title   string `json:"title"`
			Body    string `json:"body"`
			HTMLURL string `json:"html_url"`
			Head    struct {
				Ref string `json:"ref"`
				SHA string `json:"sha"`
			} `json:"head"`
			User struct {
				Login string `json:"login"`
			} `json:"user"`
			Merged    bool      `json:"merged"`
			UpdatedAt time.Time `json:"updated_at"`
		} `json:"pull_request"`
		Repository githubRepo `json:"repository"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse pull request event: %w", err)
	}

	out := model.NormalizedEvent{
		Type:          model.AlertTypePullRequest,
		Title:         fmt.Sprintf("PR #%d %s: %s", event.Number, event.Action, event.PullRequest.Title),
		Description:   event.PullRequest.Body,
		Branch:        event.PullRequest.Head.Ref,
		Commit:        event.PullRequest.Head.SHA,
		PRNumber:      event.Number,
		ExternalURL:   event.PullRequest.HTMLURL,
		ActorUsername: event.PullRequest.User.Login,
		EventAt:       event.PullRequest.UpdatedAt,
	}

	// Merged takes precedence over closed.
	if event.Action == "closed" && event.PullRequest.Merged {
		out.Type = model.AlertTypeMerge
		out.Title = fmt.Sprintf("PR #%d merged: %s", event.Number, event.PullRequest.Title)
	}
	if event.Action == "opened" || event.Action == "review_requested" {
		out.IsActionable = true
		out.RequiredAction = "Review the pull request"
	}

	return p.normalized(event.Repository, out), nil
}

// ParseWorkflowRunEvent normalizes a GitHub workflow_run event.
// A failed run escalates priority and demands action.
func (p *GitHubWebhookParser) ParseWorkflowRunEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		Action      string `json:"action"`
		WorkflowRun struct {
			Name       string    `json:"name"`
			HeadBranch string    `json:"head_branch"`
			HeadSHA    string    `json:"head_sha"`
			Status     string    `json:"status"`
			Conclusion string    `json:"conclusion"`
			HTMLURL    string    `json:"html_url"`
			UpdatedAt  time.Time `json:"updated_at"`
			Actor      struct {
				Login string `json:"login"`
			} `json:"actor"`
		} `json:"workflow_run"`
		Repository githubRepo `json:"repository"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse workflow run event: %w", err)
	}

	run := event.WorkflowRun
	out := model.NormalizedEvent{
		Type:          model.AlertTypeWorkflowRun,
		Title:         fmt.Sprintf("Workflow %s: %s", run.Name, firstNonEmpty(run.Conclusion, run.Status)),
		Branch:        run.HeadBranch,
		Commit:        run.HeadSHA,
		ExternalURL:   run.HTMLURL,
		ActorUsername: run.Actor.Login,
		EventAt:       run.UpdatedAt,
	}
	if run.Conclusion == "failure" || run.Conclusion == "timed_out" {
		out.Priority = model.AlertPriorityHigh
		out.IsActionable = true
		out.RequiredAction = fmt.Sprintf("Investigate failed workflow run %q", run.Name)
	}

	return p.normalized(event.Repository, out), nil
}

// ParseCheckRunEvent normalizes a GitHub check_run event into the build/test
// family, based on the check name.
func (p *GitHubWebhookParser) ParseCheckRunEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		Action   string `json:"action"`
		CheckRun struct {
			Name        string    `json:"name"`
			HeadSHA     string    `json:"head_sha"`
			Status      string    `json:"status"`
			Conclusion  string    `json:"conclusion"`
			HTMLURL     string    `json:"html_url"`
			CompletedAt time.Time `json:"completed_at"`
		} `json:"check_run"`
		Sender struct {
			Login string `json:"login"`
		} `json:"sender"`
		Repository githubRepo `json:"repository"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse check run event: %w", err)
	}

	check := event.CheckRun
	alertType := model.AlertTypeBuild
	if strings.Contains(strings.ToLower(check.Name), "test") {
		alertType = model.AlertTypeTest
	}

	out := model.NormalizedEvent{
		Type:          alertType,
		Title:         fmt.Sprintf("Check %s: %s", check.Name, firstNonEmpty(check.Conclusion, check.Status)),
		Commit:        check.HeadSHA,
		ExternalURL:   check.HTMLURL,
		ActorUsername: event.Sender.Login,
		EventAt:       check.CompletedAt,
	}
	if check.Conclusion == "failure" {
		out.Priority = model.AlertPriorityHigh
		out.IsActionable = true
		out.RequiredAction = fmt.Sprintf("Fix failing check %q", check.Name)
	}

	return p.normalized(event.Repository, out), nil
}

// ParseIssueCommentEvent normalizes a GitHub issue_comment event. GitHub
// delivers PR conversation comments through this event too; the issue block
// carries a pull_request link in that case.
func (p *GitHubWebhookParser) ParseIssueCommentEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		Action string `json:"action"`
		Issue  struct {
			Number      int    `json:"number"`
			Title       string `json:"title"`
			PullRequest *struct {
				URL string `json:"url"`
			} `json:"pull_request"`
		} `json:"issue"`
		Comment struct {
			Body      string    `json:"body"`
			HTMLURL   string    `json:"html_url"`
			CreatedAt time.Time `json:"created_at"`
			User      struct {
				Login string `json:"login"`
			} `json:"user"`
		} `json:"comment"`
		Repository githubRepo `json:"repository"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse issue comment event: %w", err)
	}

	out := model.NormalizedEvent{
		Type:          model.AlertTypeComment,
		Title:         fmt.Sprintf("Comment on #%d: %s", event.Issue.Number, event.Issue.Title),
		Description:   event.Comment.Body,
		ExternalURL:   event.Comment.HTMLURL,
		ActorUsername: event.Comment.User.Login,
		EventAt:       event.Comment.CreatedAt,
	}
	if event.Issue.PullRequest != nil {
		out.PRNumber = event.Issue.Number
	} else {
		out.IssueNumber = event.Issue.Number
	}

	return p.normalized(event.Repository, out), nil
}

// ParseReviewCommentEvent normalizes a GitHub pull_request_review_comment
// event (inline diff comments).
func (p *GitHubWebhookParser) ParseReviewCommentEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		Action  string `json:"action"`
		Comment struct {
			Body      string    `json:"body"`
			Path      string    `json:"path"`
			CommitID  string    `json:"commit_id"`
			HTMLURL   string    `json:"html_url"`
			CreatedAt time.Time `json:"created_at"`
			User      struct {
				Login string `json:"login"`
			} `json:"user"`
		} `json:"comment"`
		PullRequest struct {
			Number int    `json:"number"`
			Title  string `json:"title"`
			Head   struct {
				Ref string `json:"ref"`
			} `json:"head"`
		} `json:"pull_request"`
		Repository githubRepo `json:"repository"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse review comment event: %w", err)
	}

	return p.normalized(event.Repository, model.NormalizedEvent{
		Type:          model.AlertTypeComment,
		Title:         fmt.Sprintf("Review comment on PR #%d: %s", event.PullRequest.Number, event.PullRequest.Title),
		Description:   event.Comment.Body,
		Branch:        event.PullRequest.Head.Ref,
		Commit:        event.Comment.CommitID,
		PRNumber:      event.PullRequest.Number,
		ExternalURL:   event.Comment.HTMLURL,
		ActorUsername: event.Comment.User.Login,
		EventAt:       event.Comment.CreatedAt,
	}), nil
}

// ParseDeploymentStatusEvent normalizes a GitHub deployment_status event.
func (p *GitHubWebhookParser) ParseDeploymentStatusEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		DeploymentStatus struct {
			State       string    `json:"state"`
			Description string    `json:"description"`
			TargetURL   string    `json:"target_url"`
			CreatedAt   time.Time `json:"created_at"`
			Creator     struct {
				Login string `json:"login"`
			} `json:"creator"`
		} `json:"deployment_status"`
		Deployment struct {
			Environment string `json:"environment"`
			Ref         string `json:"ref"`
			SHA         string `json:"sha"`
		} `json:"deployment"`
		Repository githubRepo `json:"repository"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse deployment status event: %w", err)
	}

	status := event.DeploymentStatus
	out := model.NormalizedEvent{
		Type:          model.AlertTypeDeployment,
		Title:         fmt.Sprintf("Deployment to %s: %s", event.Deployment.Environment, status.State),
		Description:   status.Description,
		Branch:        event.Deployment.Ref,
		Commit:        event.Deployment.SHA,
		ExternalURL:   status.TargetURL,
		ActorUsername: status.Creator.Login,
		EventAt:       status.CreatedAt,
	}
	if status.State == "failure" || status.State == "error" {
		out.Priority = model.AlertPriorityHigh
		out.IsActionable = true
		out.RequiredAction = fmt.Sprintf("Investigate failed deployment to %s", event.Deployment.Environment)
	}

	return p.normalized(event.Repository, out), nil
}

// normalized fills the provider-invariant fields.
func (p *GitHubWebhookParser) normalized(repo githubRepo, out model.NormalizedEvent) *model.NormalizedEvent {
	out.Provider = model.ProviderGitHub
	out.RepoExternalID = repo.ID
	out.RepoFullName = repo.FullName
	out.RepoRemoteURL = repo.HTMLURL
	if out.Priority == "" {
		out.Priority = model.AlertPriorityMedium
	}
	out.ReceivedAt = time.Now()
	return &out
}

// branchFromRef extracts the branch name from a ref (refs/heads/main → main).
func branchFromRef(ref string) string {
	return strings.TrimPrefix(ref, "refs/heads/")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
