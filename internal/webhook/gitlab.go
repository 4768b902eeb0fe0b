package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	"teamboard/internal/model"
)

// GitLabWebhookParser normalizes GitLab webhook payloads.
type GitLabWebhookParser struct{}

func NewGitLabParser() *GitLabWebhookParser {
	return &GitLabWebhookParser{}
}

// gitlabProject is the project block common to all GitLab event payloads.
type gitlabProject struct {
	ID                int64  `json:"id"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
}

func (p gitlabProject) identity() repoIdentity {
	return repoIdentity{ExternalID: p.ID, FullName: p.PathWithNamespace, RemoteURL: p.WebURL}
}

// ParseRepoIdentity extracts only the project block, enough to resolve the
// tracked repository before full parsing.
func (p *GitLabWebhookParser) ParseRepoIdentity(payload []byte) (repoIdentity, error) {
	var event struct {
		Project gitlabProject `json:"project"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return repoIdentity{}, fmt.Errorf("failed to parse project block: %w", err)
	}
	if event.Project.PathWithNamespace == "" && event.Project.ID == 0 {
		return repoIdentity{}, fmt.Errorf("payload carries no project identity")
	}
	return event.Project.identity(), nil
}

// ParsePushEvent normalizes a GitLab push event. The last commit of the push
// becomes the alert's head.
func (p *GitLabWebhookParser) ParsePushEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		ObjectKind string        `json:"object_kind"`
		Ref        string        `json:"ref"`
		UserName   string        `json:"user_username"`
		Project    gitlabProject `json:"project"`
		Commits    []struct {
			ID        string    `json:"id"`
			Message   string    `json:"message"`
			URL       string    `json:"url"`
			Timestamp time.Time `json:"timestamp"`
		} `json:"commits"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse push event: %w", err)
	}

	branch := branchFromRef(event.Ref)
	out := model.NormalizedEvent{
		Type:          model.AlertTypePush,
		Title:         fmt.Sprintf("Push to %s", branch),
		Branch:        branch,
		ActorUsername: event.UserName,
	}
	if len(event.Commits) > 0 {
		last := event.Commits[len(event.Commits)-1]
		out.Description = last.Message
		out.Commit = last.ID
		out.ExternalURL = last.URL
		out.EventAt = last.Timestamp
	}

	return p.normalized(event.Project, out), nil
}

// ParseMergeRequestEvent normalizes a GitLab merge request event.
// action "merge" maps to the merge category; an unmergeable MR surfaces as a
// conflict alert demanding action.
func (p *GitLabWebhookParser) ParseMergeRequestEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		ObjectKind       string `json:"object_kind"`
		ObjectAttributes struct {
			IID          int       `json:"iid"` // MR number
			Title        string    `json:"title"`
			Description  string    `json:"description"`
			State        string    `json:"state"` // opened, closed, merged
			Action       string    `json:"action"`
			MergeStatus  string    `json:"merge_status"`
			SourceBranch string    `json:"source_branch"`
			URL          string    `json:"url"`
			UpdatedAt    time.Time `json:"updated_at"`
			LastCommit   struct {
				ID string `json:"id"`
			} `json:"last_commit"`
		} `json:"object_attributes"`
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		Project gitlabProject `json:"project"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse merge request event: %w", err)
	}

	attrs := event.ObjectAttributes
	out := model.NormalizedEvent{
		Type:          model.AlertTypePullRequest,
		Title:         fmt.Sprintf("MR !%d %s: %s", attrs.IID, attrs.Action, attrs.Title),
		Description:   attrs.Description,
		Branch:        attrs.SourceBranch,
		Commit:        attrs.LastCommit.ID,
		PRNumber:      attrs.IID,
		ExternalURL:   attrs.URL,
		ActorUsername: event.User.Username,
		EventAt:       attrs.UpdatedAt,
	}

	switch {
	case attrs.Action == "merge" || attrs.State == "merged":
		out.Type = model.AlertTypeMerge
		out.Title = fmt.Sprintf("MR !%d merged: %s", attrs.IID, attrs.Title)
	case attrs.MergeStatus == "cannot_be_merged":
		out.Type = model.AlertTypeConflict
		out.Title = fmt.Sprintf("MR !%d has conflicts: %s", attrs.IID, attrs.Title)
		out.Priority = model.AlertPriorityHigh
		out.IsActionable = true
		out.RequiredAction = "Resolve merge conflicts"
	case attrs.Action == "open":
		out.IsActionable = true
		out.RequiredAction = "Review the merge request"
	}

	return p.normalized(event.Project, out), nil
}

// ParsePipelineEvent normalizes a GitLab pipeline event.
func (p *GitLabWebhookParser) ParsePipelineEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		ObjectKind       string `json:"object_kind"`
		ObjectAttributes struct {
			ID         int64     `json:"id"`
			Ref        string    `json:"ref"`
			SHA        string    `json:"sha"`
			Status     string    `json:"status"` // pending, running, success, failed
			URL        string    `json:"url"`
			FinishedAt time.Time `json:"finished_at"`
		} `json:"object_attributes"`
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		Project gitlabProject `json:"project"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline event: %w", err)
	}

	attrs := event.ObjectAttributes
	out := model.NormalizedEvent{
		Type:          model.AlertTypePipeline,
		Title:         fmt.Sprintf("Pipeline %s on %s", attrs.Status, attrs.Ref),
		Branch:        attrs.Ref,
		Commit:        attrs.SHA,
		ExternalURL:   attrs.URL,
		ActorUsername: event.User.Username,
		EventAt:       attrs.FinishedAt,
	}
	if attrs.Status == "failed" {
		out.Priority = model.AlertPriorityHigh
		out.IsActionable = true
		out.RequiredAction = fmt.Sprintf("Investigate failed pipeline on %s", attrs.Ref)
	}

	return p.normalized(event.Project, out), nil
}

// ParseNoteEvent normalizes a GitLab note (comment) event.
func (p *GitLabWebhookParser) ParseNoteEvent(payload []byte) (*model.NormalizedEvent, error) {
	var event struct {
		ObjectKind       string `json:"object_kind"`
		ObjectAttributes struct {
			Note         string    `json:"note"`
			NoteableType string    `json:"noteable_type"` // MergeRequest, Issue, Commit
			URL          string    `json:"url"`
			CreatedAt    time.Time `json:"created_at"`
		} `json:"object_attributes"`
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		MergeRequest *struct {
			IID   int    `json:"iid"`
			Title string `json:"title"`
		} `json:"merge_request"`
		Issue *struct {
			IID   int    `json:"iid"`
			Title string `json:"title"`
		} `json:"issue"`
		Project gitlabProject `json:"project"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse note event: %w", err)
	}

	out := model.NormalizedEvent{
		Type:          model.AlertTypeComment,
		Title:         "New comment",
		Description:   event.ObjectAttributes.Note,
		ExternalURL:   event.ObjectAttributes.URL,
		ActorUsername: event.User.Username,
		EventAt:       event.ObjectAttributes.CreatedAt,
	}
	if event.MergeRequest != nil {
		out.PRNumber = event.MergeRequest.IID
		out.Title = fmt.Sprintf("Comment on MR !%d: %s", event.MergeRequest.IID, event.MergeRequest.Title)
	} else if event.Issue != nil {
		out.IssueNumber = event.Issue.IID
		out.Title = fmt.Sprintf("Comment on issue #%d: %s", event.Issue.IID, event.Issue.Title)
	}

	return p.normalized(event.Project, out), nil
}

// normalized fills the provider-invariant fields.
func (p *GitLabWebhookParser) normalized(project gitlabProject, out model.NormalizedEvent) *model.NormalizedEvent {
	out.Provider = model.ProviderGitLab
	out.RepoExternalID = project.ID
	out.RepoFullName = project.PathWithNamespace
	out.RepoRemoteURL = project.WebURL
	if out.Priority == "" {
		out.Priority = model.AlertPriorityMedium
	}
	out.ReceivedAt = time.Now()
	return &out
}
