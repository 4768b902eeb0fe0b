package webhook

import (
	"fmt"
	"testing"

	"teamboard/internal/model"
)

func TestGitLabParsePushEvent(t *testing.T) {
	p := NewGitLabParser()

	payload := []byte(`{
		"object_kind": "push",
		"ref": "refs/heads/main",
		"user_username": "jdoe",
		"project": {"id": 99, "path_with_namespace": "acme/api", "web_url": "https://gitlab.com/acme/api"},
		"commits": [
			{"id": "aaa111", "message": "First", "url": "https://gitlab.com/acme/api/-/commit/aaa111"},
			{"id": "bbb222", "message": "Second", "url": "https://gitlab.com/acme/api/-/commit/bbb222"}
		]
	}`)

	event, err := p.ParsePushEvent(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Type != model.AlertTypePush {
		t.Errorf("expected PUSH, got %s", event.Type)
	}
	if event.Commit != "bbb222" {
		t.Errorf("expected last commit as head, got %q", event.Commit)
	}
	if event.Provider != model.ProviderGitLab || event.RepoExternalID != 99 {
		t.Errorf("project block not normalized: %s/%d", event.Provider, event.RepoExternalID)
	}
}

func TestGitLabParseMergeRequestEvent(t *testing.T) {
	p := NewGitLabParser()

	base := `{
		"object_kind": "merge_request",
		"object_attributes": {
			"iid": 5,
			"title": "Add caching",
			"state": "%s",
			"action": "%s",
			"merge_status": "%s",
			"source_branch": "cache",
			"url": "https://gitlab.com/acme/api/-/merge_requests/5",
			"last_commit": {"id": "def456"}
		},
		"user": {"username": "jdoe"},
		"project": {"id": 99, "path_with_namespace": "acme/api", "web_url": "https://gitlab.com/acme/api"}
	}`

	t.Run("Merged Becomes Merge", func(t *testing.T) {
		event, err := p.ParseMergeRequestEvent([]byte(fmt.Sprintf(base, "merged", "merge", "can_be_merged")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypeMerge {
			t.Errorf("expected MERGE, got %s", event.Type)
		}
		if event.PRNumber != 5 {
			t.Errorf("expected MR number 5, got %d", event.PRNumber)
		}
	})

	t.Run("Unmergeable Becomes Conflict", func(t *testing.T) {
		event, err := p.ParseMergeRequestEvent([]byte(fmt.Sprintf(base, "opened", "update", "cannot_be_merged")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypeConflict {
			t.Errorf("expected CONFLICT, got %s", event.Type)
		}
		if event.Priority != model.AlertPriorityHigh || !event.IsActionable {
			t.Errorf("conflict must escalate: priority=%s actionable=%v", event.Priority, event.IsActionable)
		}
	})

	t.Run("Opened Is Actionable", func(t *testing.T) {
		event, err := p.ParseMergeRequestEvent([]byte(fmt.Sprintf(base, "opened", "open", "unchecked")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypePullRequest {
			t.Errorf("expected PULL_REQUEST, got %s", event.Type)
		}
		if !event.IsActionable {
			t.Errorf("opened MR must demand review")
		}
	})
}

func TestGitLabParsePipelineEvent(t *testing.T) {
	p := NewGitLabParser()

	base := `{
		"object_kind": "pipeline",
		"object_attributes": {
			"id": 77,
			"ref": "main",
			"sha": "abc123",
			"status": "%s",
			"url": "https://gitlab.com/acme/api/-/pipelines/77"
		},
		"user": {"username": "jdoe"},
		"project": {"id": 99, "path_with_namespace": "acme/api", "web_url": "https://gitlab.com/acme/api"}
	}`

	t.Run("Failed Escalates", func(t *testing.T) {
		event, err := p.ParsePipelineEvent([]byte(fmt.Sprintf(base, "failed")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypePipeline {
			t.Errorf("expected PIPELINE, got %s", event.Type)
		}
		if event.Priority != model.AlertPriorityHigh || !event.IsActionable {
			t.Errorf("failed pipeline must escalate")
		}
	})

	t.Run("Success Stays Medium", func(t *testing.T) {
		event, err := p.ParsePipelineEvent([]byte(fmt.Sprintf(base, "success")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Priority != model.AlertPriorityMedium || event.IsActionable {
			t.Errorf("successful pipeline must stay informational")
		}
	})
}

func TestGitLabParseNoteEvent(t *testing.T) {
	p := NewGitLabParser()

	t.Run("Comment On Merge Request", func(t *testing.T) {
		payload := []byte(`{
			"object_kind": "note",
			"object_attributes": {
				"note": "Looks good",
				"noteable_type": "MergeRequest",
				"url": "https://gitlab.com/acme/api/-/merge_requests/5#note_1"
			},
			"user": {"username": "jdoe"},
			"merge_request": {"iid": 5, "title": "Add caching"},
			"project": {"id": 99, "path_with_namespace": "acme/api", "web_url": "https://gitlab.com/acme/api"}
		}`)

		event, err := p.ParseNoteEvent(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Type != model.AlertTypeComment {
			t.Errorf("expected COMMENT, got %s", event.Type)
		}
		if event.PRNumber != 5 || event.IssueNumber != 0 {
			t.Errorf("expected MR number 5, got pr=%d issue=%d", event.PRNumber, event.IssueNumber)
		}
	})

	t.Run("Comment On Issue", func(t *testing.T) {
		payload := []byte(`{
			"object_kind": "note",
			"object_attributes": {
				"note": "Reproduced",
				"noteable_type": "Issue",
				"url": "https://gitlab.com/acme/api/-/issues/12#note_2"
			},
			"user": {"username": "jdoe"},
			"issue": {"iid": 12, "title": "Flaky test"},
			"project": {"id": 99, "path_with_namespace": "acme/api", "web_url": "https://gitlab.com/acme/api"}
		}`)

		event, err := p.ParseNoteEvent(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.IssueNumber != 12 || event.PRNumber != 0 {
			t.Errorf("expected issue number 12, got pr=%d issue=%d", event.PRNumber, event.IssueNumber)
		}
	})
}
