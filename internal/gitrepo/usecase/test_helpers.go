package usecase

import (
	"context"

	"teamboard/internal/gitrepo"
	repo "teamboard/internal/gitrepo/repository"
	"teamboard/internal/project"
)

// mockLogger implements log.Logger with no-ops.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo implements the gitrepo repository with overridable behaviors.
type mockRepo struct {
	createFunc     func(opt repo.CreateRepositoryOptions) (gitrepo.Repository, error)
	getOneFunc     func(opt repo.GetOneRepositoryOptions) (gitrepo.Repository, error)
	listFunc       func(opt repo.ListRepositoriesOptions) ([]gitrepo.Repository, int, error)
	updateFunc     func(opt repo.UpdateRepositoryOptions) (gitrepo.Repository, error)
	softDeleteFunc func(id string) error
}

func (m *mockRepo) CreateRepository(ctx context.Context, opt repo.CreateRepositoryOptions) (gitrepo.Repository, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return gitrepo.Repository{ID: opt.ID, SyncInterval: opt.SyncInterval}, nil
}

func (m *mockRepo) GetOneRepository(ctx context.Context, opt repo.GetOneRepositoryOptions) (gitrepo.Repository, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return gitrepo.Repository{}, nil
}

func (m *mockRepo) ListRepositories(ctx context.Context, opt repo.ListRepositoriesOptions) ([]gitrepo.Repository, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) UpdateRepository(ctx context.Context, opt repo.UpdateRepositoryOptions) (gitrepo.Repository, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return gitrepo.Repository{ID: opt.ID}, nil
}

func (m *mockRepo) TouchLastSynced(ctx context.Context, opt repo.TouchLastSyncedOptions) error {
	return nil
}

func (m *mockRepo) SoftDeleteRepository(ctx context.Context, id string) error {
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(id)
	}
	return nil
}

// mockProjectRepo implements the project read repository.
type mockProjectRepo struct {
	getOneFunc func(id string) (project.Project, error)
}

func (m *mockProjectRepo) GetOneProject(ctx context.Context, id string) (project.Project, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(id)
	}
	return project.Project{ID: id}, nil
}

func (m *mockProjectRepo) ListActiveMemberIDs(ctx context.Context, projectID string) ([]string, error) {
	return nil, nil
}
