package webhook

import (
	"fmt"
	"testing"

	"teamboard/internal/model"
)

func TestGitHubParsePushEvent(t *testing.T) {
	p := NewGitHubParser()

	payload := []byte(`{
		"ref": "refs/heads/feature/login",
		"repository": {"id": 42, "full_name": "acme/api", "html_url": "https://github.com/acme/api"},
		"pusher": {"name": "octocat"},
		"head_commit": {
			"id": "abc123",
			"message": "Fix login redirect",
			"url": "https://github.com/acme/api/commit/abc123",
			"timestamp": "2025-06-01T10:00:00Z"
		}
	}`)

	event, err := p.ParsePushEvent(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Type != model.AlertTypePush {
		t.Errorf("expected PUSH, got %s", event.Type)
	}
	if event.Branch != "feature/login" {
		t.Errorf("expected branch feature/login, got %q", event.Branch)
	}
	if event.Commit != "abc123" || event.ActorUsername != "octocat" {
		t.Errorf("commit/actor not extracted: %q/%q", event.Commit, event.ActorUsername)
	}
	if event.Provider != model.ProviderGitHub || event.RepoFullName != "acme/api" {
		t.Errorf("provider block not normalized: %s/%s", event.Provider, event.RepoFullName)
	}
	if event.Priority != model.AlertPriorityMedium {
		t.Errorf("expected default MEDIUM priority, got %s", event.Priority)
	}
}

func TestGitHubParsePullRequestEvent(t *testing.T) {
	p := NewGitHubParser()

	base := `{
		"action": "%s",
		"number": 7,
		"pull_request": {
			"title": "Add caching",
			"html_url": "https://github.com/acme/api/pull/7",
			"head": {"ref": "cache", "sha": "def456"},
			"user": {"login": "octocat"},
			"merged": %s
		},
		"repository": {"id": 42, "full_name": "acme/api", "html_url": "https://github.com/acme/api"}
	}`

	t.Run("Opened Is Actionable", func(t *testing.T) {
		event, err := p.ParsePullRequestEvent([]byte(fmt.Sprintf(base, "opened", "false")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypePullRequest {
			t.Errorf("expected PULL_REQUEST, got %s", event.Type)
		}
		if !event.IsActionable || event.RequiredAction == "" {
			t.Errorf("opened PR must demand review")
		}
		if event.PRNumber != 7 {
			t.Errorf("expected PR number 7, got %d", event.PRNumber)
		}
	})

	t.Run("Closed And Merged Becomes Merge", func(t *testing.T) {
		event, err := p.ParsePullRequestEvent([]byte(fmt.Sprintf(base, "closed", "true")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypeMerge {
			t.Errorf("expected MERGE for merged PR, got %s", event.Type)
		}
	})

	t.Run("Closed Unmerged Stays Pull Request", func(t *testing.T) {
		event, err := p.ParsePullRequestEvent([]byte(fmt.Sprintf(base, "closed", "false")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypePullRequest {
			t.Errorf("expected PULL_REQUEST for closed-unmerged, got %s", event.Type)
		}
	})
}

func TestGitHubParseWorkflowRunEvent(t *testing.T) {
	p := NewGitHubParser()

	payload := []byte(`{
		"action": "completed",
		"workflow_run": {
			"name": "CI",
			"head_branch": "main",
			"head_sha": "abc123",
			"status": "completed",
			"conclusion": "failure",
			"html_url": "https://github.com/acme/api/actions/runs/1",
			"actor": {"login": "octocat"}
		},
		"repository": {"id": 42, "full_name": "acme/api", "html_url": "https://github.com/acme/api"}
	}`)

	event, err := p.ParseWorkflowRunEvent(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Type != model.AlertTypeWorkflowRun {
		t.Errorf("expected WORKFLOW_RUN, got %s", event.Type)
	}
	if event.Priority != model.AlertPriorityHigh || !event.IsActionable {
		t.Errorf("failed run must escalate: priority=%s actionable=%v", event.Priority, event.IsActionable)
	}
}

func TestGitHubParseCheckRunEvent(t *testing.T) {
	p := NewGitHubParser()

	base := `{
		"action": "completed",
		"check_run": {
			"name": "%s",
			"head_sha": "abc123",
			"status": "completed",
			"conclusion": "%s",
			"html_url": "https://github.com/acme/api/runs/1"
		},
		"sender": {"login": "octocat"},
		"repository": {"id": 42, "full_name": "acme/api", "html_url": "https://github.com/acme/api"}
	}`

	t.Run("Test Check Maps To Test", func(t *testing.T) {
		event, err := p.ParseCheckRunEvent([]byte(fmt.Sprintf(base, "unit-tests", "success")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypeTest {
			t.Errorf("expected TEST, got %s", event.Type)
		}
	})

	t.Run("Other Check Maps To Build", func(t *testing.T) {
		event, err := p.ParseCheckRunEvent([]byte(fmt.Sprintf(base, "docker-image", "failure")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypeBuild {
			t.Errorf("expected BUILD, got %s", event.Type)
		}
		if event.Priority != model.AlertPriorityHigh || !event.IsActionable {
			t.Errorf("failed check must escalate")
		}
	})
}

func TestGitHubParseIssueCommentEvent(t *testing.T) {
	p := NewGitHubParser()

	base := `{
		"action": "created",
		"issue": {"number": 12, "title": "Flaky test"%s},
		"comment": {
			"body": "Reproduced on CI",
			"html_url": "https://github.com/acme/api/issues/12#issuecomment-1",
			"user": {"login": "octocat"}
		},
		"repository": {"id": 42, "full_name": "acme/api", "html_url": "https://github.com/acme/api"}
	}`

	t.Run("Issue Comment", func(t *testing.T) {
		event, err := p.ParseIssueCommentEvent([]byte(fmt.Sprintf(base, "")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypeComment {
			t.Errorf("expected COMMENT, got %s", event.Type)
		}
		if event.IssueNumber != 12 || event.PRNumber != 0 {
			t.Errorf("expected issue number 12, got issue=%d pr=%d", event.IssueNumber, event.PRNumber)
		}
	})

	t.Run("PR Conversation Comment", func(t *testing.T) {
		withPR := fmt.Sprintf(base, `, "pull_request": {"url": "https://api.github.com/repos/acme/api/pulls/12"}`)
		event, err := p.ParseIssueCommentEvent([]byte(withPR))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.PRNumber != 12 || event.IssueNumber != 0 {
			t.Errorf("expected PR number 12, got issue=%d pr=%d", event.IssueNumber, event.PRNumber)
		}
	})
}

func TestGitHubParseReviewCommentEvent(t *testing.T) {
	p := NewGitHubParser()

	payload := []byte(`{
		"action": "created",
		"comment": {
			"body": "Off by one here",
			"path": "internal/cache/lru.go",
			"commit_id": "abc123",
			"html_url": "https://github.com/acme/api/pull/7#discussion_r1",
			"user": {"login": "octocat"}
		},
		"pull_request": {"number": 7, "title": "Add caching", "head": {"ref": "cache"}},
		"repository": {"id": 42, "full_name": "acme/api", "html_url": "https://github.com/acme/api"}
	}`)

	event, err := p.ParseReviewCommentEvent(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Type != model.AlertTypeComment {
		t.Errorf("expected COMMENT, got %s", event.Type)
	}
	if event.PRNumber != 7 || event.Commit != "abc123" {
		t.Errorf("PR context not extracted: pr=%d commit=%q", event.PRNumber, event.Commit)
	}
}

func TestGitHubParseRepoIdentity(t *testing.T) {
	p := NewGitHubParser()

	t.Run("Identity Extracted", func(t *testing.T) {
		id, err := p.ParseRepoIdentity([]byte(`{"repository": {"id": 42, "full_name": "acme/api", "html_url": "https://github.com/acme/api"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.ExternalID != 42 || id.FullName != "acme/api" {
			t.Errorf("identity not extracted: %+v", id)
		}
	})

	t.Run("Missing Repository Block", func(t *testing.T) {
		if _, err := p.ParseRepoIdentity([]byte(`{"zen": "Design for failure."}`)); err == nil {
			t.Errorf("expected error for payload without repository")
		}
	})
}
