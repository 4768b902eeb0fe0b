package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"teamboard/internal/gitrepo"
	repo "teamboard/internal/gitrepo/repository"
	"teamboard/internal/project"
	"teamboard/pkg/scope"
)

func TestLink(t *testing.T) {
	ctx := context.Background()
	sc := scope.Scope{UserID: "user-1"}

	input := gitrepo.LinkInput{
		Name:      "api",
		RemoteURL: "https://github.com/acme/api",
		Provider:  "GITHUB",
		ProjectID: "p1",
	}

	t.Run("Invalid Provider Rejected", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockProjectRepo{}, &mockLogger{})
		bad := input
		bad.Provider = "BITBUCKET"
		_, err := uc.Link(ctx, sc, bad)
		if !errors.Is(err, gitrepo.ErrInvalidProvider) {
			t.Errorf("expected ErrInvalidProvider, got %v", err)
		}
	})

	t.Run("Missing Project Rejected", func(t *testing.T) {
		projects := &mockProjectRepo{
			getOneFunc: func(id string) (project.Project, error) {
				return project.Project{}, nil // not found
			},
		}
		uc := New(&mockRepo{}, projects, &mockLogger{})
		_, err := uc.Link(ctx, sc, input)
		if !errors.Is(err, gitrepo.ErrProjectNotFound) {
			t.Errorf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("Duplicate Remote Rejected", func(t *testing.T) {
		repos := &mockRepo{
			getOneFunc: func(opt repo.GetOneRepositoryOptions) (gitrepo.Repository, error) {
				if opt.ProjectID != "p1" {
					t.Errorf("duplicate check must be scoped to the project, got %q", opt.ProjectID)
				}
				return gitrepo.Repository{ID: "existing"}, nil
			},
		}
		uc := New(repos, &mockProjectRepo{}, &mockLogger{})
		_, err := uc.Link(ctx, sc, input)
		if !errors.Is(err, gitrepo.ErrDuplicateRemote) {
			t.Errorf("expected ErrDuplicateRemote, got %v", err)
		}
	})

	t.Run("Default Sync Interval Applied", func(t *testing.T) {
		var gotInterval time.Duration
		repos := &mockRepo{
			createFunc: func(opt repo.CreateRepositoryOptions) (gitrepo.Repository, error) {
				gotInterval = opt.SyncInterval
				return gitrepo.Repository{ID: opt.ID}, nil
			},
		}
		uc := New(repos, &mockProjectRepo{}, &mockLogger{})
		if _, err := uc.Link(ctx, sc, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotInterval != defaultSyncInterval {
			t.Errorf("expected default interval %v, got %v", defaultSyncInterval, gotInterval)
		}
	})

	t.Run("Linked With Generated ID", func(t *testing.T) {
		var gotID string
		repos := &mockRepo{
			createFunc: func(opt repo.CreateRepositoryOptions) (gitrepo.Repository, error) {
				gotID = opt.ID
				return gitrepo.Repository{ID: opt.ID, RemoteURL: opt.RemoteURL}, nil
			},
		}
		uc := New(repos, &mockProjectRepo{}, &mockLogger{})
		out, err := uc.Link(ctx, sc, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotID == "" || out.Repository.ID != gotID {
			t.Errorf("expected generated id to round-trip, got %q/%q", gotID, out.Repository.ID)
		}
	})
}

func TestListRepositories(t *testing.T) {
	ctx := context.Background()
	sc := scope.Scope{UserID: "user-1"}

	t.Run("Limit Clamped", func(t *testing.T) {
		var gotLimit int
		repos := &mockRepo{
			listFunc: func(opt repo.ListRepositoriesOptions) ([]gitrepo.Repository, int, error) {
				gotLimit = opt.Limit
				return nil, 0, nil
			},
		}
		uc := New(repos, &mockProjectRepo{}, &mockLogger{})
		if _, err := uc.List(ctx, sc, gitrepo.ListInput{Limit: 9999}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotLimit != gitrepo.MaxPageLimit {
			t.Errorf("expected limit clamped to %d, got %d", gitrepo.MaxPageLimit, gotLimit)
		}
	})
}

func TestUpdateSync(t *testing.T) {
	ctx := context.Background()
	sc := scope.Scope{UserID: "user-1"}

	t.Run("Missing Repository", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockProjectRepo{}, &mockLogger{})
		_, err := uc.UpdateSync(ctx, sc, gitrepo.UpdateSyncInput{ID: "missing"})
		if !errors.Is(err, gitrepo.ErrRepositoryNotFound) {
			t.Errorf("expected ErrRepositoryNotFound, got %v", err)
		}
	})

	t.Run("Partial Update Forwarded", func(t *testing.T) {
		enabled := false
		var gotOpt repo.UpdateRepositoryOptions
		repos := &mockRepo{
			getOneFunc: func(opt repo.GetOneRepositoryOptions) (gitrepo.Repository, error) {
				return gitrepo.Repository{ID: opt.ID}, nil
			},
			updateFunc: func(opt repo.UpdateRepositoryOptions) (gitrepo.Repository, error) {
				gotOpt = opt
				return gitrepo.Repository{ID: opt.ID}, nil
			},
		}
		uc := New(repos, &mockProjectRepo{}, &mockLogger{})
		_, err := uc.UpdateSync(ctx, sc, gitrepo.UpdateSyncInput{ID: "r1", Enabled: &enabled})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpt.Enabled == nil || *gotOpt.Enabled {
			t.Errorf("expected enabled=false forwarded, got %+v", gotOpt.Enabled)
		}
		if gotOpt.AccessToken != nil || gotOpt.SyncInterval != nil {
			t.Errorf("untouched fields must stay nil")
		}
	})
}

func TestDeleteRepository(t *testing.T) {
	ctx := context.Background()
	sc := scope.Scope{UserID: "user-1"}

	t.Run("Missing Repository", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockProjectRepo{}, &mockLogger{})
		err := uc.Delete(ctx, sc, "missing")
		if !errors.Is(err, gitrepo.ErrRepositoryNotFound) {
			t.Errorf("expected ErrRepositoryNotFound, got %v", err)
		}
	})

	t.Run("Soft Delete Invoked", func(t *testing.T) {
		deleted := ""
		repos := &mockRepo{
			getOneFunc: func(opt repo.GetOneRepositoryOptions) (gitrepo.Repository, error) {
				return gitrepo.Repository{ID: opt.ID}, nil
			},
			softDeleteFunc: func(id string) error {
				deleted = id
				return nil
			},
		}
		uc := New(repos, &mockProjectRepo{}, &mockLogger{})
		if err := uc.Delete(ctx, sc, "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != "r1" {
			t.Errorf("expected soft delete of r1, got %q", deleted)
		}
	})
}
