package webhook

import (
	"context"

	"teamboard/internal/gitalert"
	"teamboard/internal/gitrepo"
	gitrepoRepo "teamboard/internal/gitrepo/repository"
	"teamboard/pkg/scope"
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

// mockAlertUC implements gitalert.UseCase. Only Ingest is exercised here.
type mockAlertUC struct {
	ingestFunc func(input gitalert.IngestInput) (gitalert.IngestOutput, error)
}

func (m *mockAlertUC) Ingest(ctx context.Context, input gitalert.IngestInput) (gitalert.IngestOutput, error) {
	if m.ingestFunc != nil {
		return m.ingestFunc(input)
	}
	return gitalert.IngestOutput{Created: true}, nil
}

func (m *mockAlertUC) List(ctx context.Context, sc scope.Scope, input gitalert.ListInput) (gitalert.ListOutput, error) {
	return gitalert.ListOutput{}, nil
}

func (m *mockAlertUC) Summary(ctx context.Context, sc scope.Scope, input gitalert.SummaryInput) (gitalert.Summary, error) {
	return gitalert.Summary{}, nil
}

func (m *mockAlertUC) Detail(ctx context.Context, sc scope.Scope, id string) (gitalert.DetailOutput, error) {
	return gitalert.DetailOutput{}, nil
}

func (m *mockAlertUC) UpdateStatus(ctx context.Context, sc scope.Scope, input gitalert.UpdateStatusInput) (gitalert.UpdateStatusOutput, error) {
	return gitalert.UpdateStatusOutput{}, nil
}

func (m *mockAlertUC) MarkRead(ctx context.Context, sc scope.Scope, alertID string) error {
	return nil
}

func (m *mockAlertUC) Delete(ctx context.Context, sc scope.Scope, id string) error {
	return nil
}

// mockRepoStore implements the gitrepo repository for secret lookups.
type mockRepoStore struct {
	getOneFunc func(opt gitrepoRepo.GetOneRepositoryOptions) (gitrepo.Repository, error)
}

func (m *mockRepoStore) GetOneRepository(ctx context.Context, opt gitrepoRepo.GetOneRepositoryOptions) (gitrepo.Repository, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return gitrepo.Repository{}, nil
}

func (m *mockRepoStore) CreateRepository(ctx context.Context, opt gitrepoRepo.CreateRepositoryOptions) (gitrepo.Repository, error) {
	return gitrepo.Repository{}, nil
}

func (m *mockRepoStore) ListRepositories(ctx context.Context, opt gitrepoRepo.ListRepositoriesOptions) ([]gitrepo.Repository, int, error) {
	return nil, 0, nil
}

func (m *mockRepoStore) UpdateRepository(ctx context.Context, opt gitrepoRepo.UpdateRepositoryOptions) (gitrepo.Repository, error) {
	return gitrepo.Repository{}, nil
}

func (m *mockRepoStore) TouchLastSynced(ctx context.Context, opt gitrepoRepo.TouchLastSyncedOptions) error {
	return nil
}

func (m *mockRepoStore) SoftDeleteRepository(ctx context.Context, id string) error {
	return nil
}
