package webhook

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"teamboard/internal/gitalert"
	"teamboard/internal/gitrepo"
	gitrepoRepo "teamboard/internal/gitrepo/repository"
)

func newGitHubRequest(body []byte, event, signature string) *http.Request {
	r := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-GitHub-Event", event)
	r.Header.Set("X-GitHub-Delivery", "delivery-1")
	if signature != "" {
		r.Header.Set("X-Hub-Signature-256", signature)
	}
	return r
}

func pushPayload() []byte {
	return []byte(`{
		"ref": "refs/heads/main",
		"repository": {"id": 42, "full_name": "acme/api", "html_url": "https://github.com/acme/api"},
		"pusher": {"name": "octocat"},
		"head_commit": {"id": "abc123", "message": "Fix login", "url": "https://github.com/acme/api/commit/abc123"}
	}`)
}

func TestHandleGitHubWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Invalid Signature Rejected", func(t *testing.T) {
		h := NewHandler(&mockAlertUC{}, &mockRepoStore{}, SecurityConfig{GitHubSecret: "secret"}, &mockLogger{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newGitHubRequest(pushPayload(), "push", "sha256=deadbeef")

		h.HandleGitHubWebhook(c)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Unsupported Event Ignored", func(t *testing.T) {
		ingested := make(chan gitalert.IngestInput, 1)
		uc := &mockAlertUC{
			ingestFunc: func(input gitalert.IngestInput) (gitalert.IngestOutput, error) {
				ingested <- input
				return gitalert.IngestOutput{Created: true}, nil
			},
		}
		h := NewHandler(uc, &mockRepoStore{}, SecurityConfig{GitHubSecret: "secret"}, &mockLogger{})

		body := pushPayload()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newGitHubRequest(body, "star", signGitHub(body, "secret"))

		h.HandleGitHubWebhook(c)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200 for unsupported event, got %d", w.Code)
		}
		select {
		case <-ingested:
			t.Errorf("unsupported event must not reach the pipeline")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Push Accepted And Ingested", func(t *testing.T) {
		ingested := make(chan gitalert.IngestInput, 1)
		uc := &mockAlertUC{
			ingestFunc: func(input gitalert.IngestInput) (gitalert.IngestOutput, error) {
				ingested <- input
				return gitalert.IngestOutput{Created: true}, nil
			},
		}
		h := NewHandler(uc, &mockRepoStore{}, SecurityConfig{GitHubSecret: "secret"}, &mockLogger{})

		body := pushPayload()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newGitHubRequest(body, "push", signGitHub(body, "secret"))

		h.HandleGitHubWebhook(c)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		select {
		case input := <-ingested:
			if input.Event.Commit != "abc123" || input.Event.DeliveryID != "delivery-1" {
				t.Errorf("event not normalized before ingestion: %+v", input.Event)
			}
		case <-time.After(time.Second):
			t.Errorf("expected async ingestion to run")
		}
	})

	t.Run("Repository Secret Overrides Global", func(t *testing.T) {
		repos := &mockRepoStore{
			getOneFunc: func(opt gitrepoRepo.GetOneRepositoryOptions) (gitrepo.Repository, error) {
				if opt.Provider != "GITHUB" || opt.ExternalID != 42 {
					t.Errorf("unexpected lookup: %+v", opt)
				}
				return gitrepo.Repository{ID: "r1", WebhookSecret: "repo-secret"}, nil
			},
		}
		h := NewHandler(&mockAlertUC{}, repos, SecurityConfig{GitHubSecret: "global"}, &mockLogger{})

		body := pushPayload()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newGitHubRequest(body, "push", signGitHub(body, "repo-secret"))

		h.HandleGitHubWebhook(c)

		if w.Code != http.StatusOK {
			t.Errorf("expected repo secret to verify, got %d", w.Code)
		}

		// The global secret must no longer verify for this repository.
		w = httptest.NewRecorder()
		c, _ = gin.CreateTestContext(w)
		c.Request = newGitHubRequest(body, "push", signGitHub(body, "global"))

		h.HandleGitHubWebhook(c)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 with global secret, got %d", w.Code)
		}
	})

	t.Run("Disallowed IP Rejected", func(t *testing.T) {
		h := NewHandler(&mockAlertUC{}, &mockRepoStore{}, SecurityConfig{
			GitHubSecret: "secret",
			AllowedIPs:   []string{"10.0.0.0/8"},
		}, &mockLogger{})

		body := pushPayload()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newGitHubRequest(body, "push", signGitHub(body, "secret"))
		c.Request.RemoteAddr = "203.0.113.7:443"

		h.HandleGitHubWebhook(c)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})
}

func TestHandleGitLabWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := []byte(`{
		"object_kind": "push",
		"ref": "refs/heads/main",
		"user_username": "jdoe",
		"project": {"id": 99, "path_with_namespace": "acme/api", "web_url": "https://gitlab.com/acme/api"},
		"commits": [{"id": "aaa111", "message": "First", "url": "https://gitlab.com/acme/api/-/commit/aaa111"}]
	}`)

	newRequest := func(token string) *http.Request {
		r := httptest.NewRequest("POST", "/webhook/gitlab", bytes.NewReader(payload))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("X-Gitlab-Event", "Push Hook")
		r.Header.Set("X-Gitlab-Event-UUID", "uuid-7")
		r.Header.Set("X-Gitlab-Token", token)
		return r
	}

	t.Run("Invalid Token Rejected", func(t *testing.T) {
		h := NewHandler(&mockAlertUC{}, &mockRepoStore{}, SecurityConfig{GitLabToken: "token"}, &mockLogger{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newRequest("wrong")

		h.HandleGitLabWebhook(c)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Valid Token Accepted", func(t *testing.T) {
		ingested := make(chan gitalert.IngestInput, 1)
		uc := &mockAlertUC{
			ingestFunc: func(input gitalert.IngestInput) (gitalert.IngestOutput, error) {
				ingested <- input
				return gitalert.IngestOutput{Created: true}, nil
			},
		}
		h := NewHandler(uc, &mockRepoStore{}, SecurityConfig{GitLabToken: "token"}, &mockLogger{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = newRequest("token")

		h.HandleGitLabWebhook(c)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		select {
		case input := <-ingested:
			if input.Event.RepoExternalID != 99 {
				t.Errorf("event not normalized: %+v", input.Event)
			}
			if input.Event.DeliveryID != "uuid-7" {
				t.Errorf("expected delivery id from X-Gitlab-Event-UUID, got %q", input.Event.DeliveryID)
			}
		case <-time.After(time.Second):
			t.Errorf("expected async ingestion to run")
		}
	})
}
