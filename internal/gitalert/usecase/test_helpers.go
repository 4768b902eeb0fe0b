package usecase

import (
	"context"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
	"teamboard/internal/gitrepo"
	gitrepoRepo "teamboard/internal/gitrepo/repository"
	"teamboard/internal/user"
	userRepo "teamboard/internal/user/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockAlertRepo implements repository.Repository with overridable funcs.
type mockAlertRepo struct {
	createAlertFunc       func(opt repo.CreateAlertOptions) (gitalert.Alert, error)
	getOneAlertFunc       func(opt repo.GetOneAlertOptions) (gitalert.Alert, error)
	listAlertsFunc        func(opt repo.ListAlertsOptions) ([]gitalert.Alert, int, error)
	summarizeAlertsFunc   func(opt repo.SummarizeAlertsOptions) (gitalert.Summary, error)
	updateAlertStatusFunc func(id, status string) (gitalert.Alert, error)
	softDeleteAlertFunc   func(id string) error
	createRecipientsFunc  func(alertID string, userIDs []string) (int, error)
	listRecipientsFunc    func(alertID string) ([]gitalert.Recipient, error)
	markRecipientReadFunc func(alertID, userID string) (int, error)
}

func (m *mockAlertRepo) CreateAlert(ctx context.Context, opt repo.CreateAlertOptions) (gitalert.Alert, error) {
	if m.createAlertFunc != nil {
		return m.createAlertFunc(opt)
	}
	return gitalert.Alert{ID: opt.ID}, nil
}

func (m *mockAlertRepo) GetOneAlert(ctx context.Context, opt repo.GetOneAlertOptions) (gitalert.Alert, error) {
	if m.getOneAlertFunc != nil {
		return m.getOneAlertFunc(opt)
	}
	return gitalert.Alert{}, nil
}

func (m *mockAlertRepo) ListAlerts(ctx context.Context, opt repo.ListAlertsOptions) ([]gitalert.Alert, int, error) {
	if m.listAlertsFunc != nil {
		return m.listAlertsFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockAlertRepo) SummarizeAlerts(ctx context.Context, opt repo.SummarizeAlertsOptions) (gitalert.Summary, error) {
	if m.summarizeAlertsFunc != nil {
		return m.summarizeAlertsFunc(opt)
	}
	return gitalert.Summary{}, nil
}

func (m *mockAlertRepo) UpdateAlertStatus(ctx context.Context, id string, status string) (gitalert.Alert, error) {
	if m.updateAlertStatusFunc != nil {
		return m.updateAlertStatusFunc(id, status)
	}
	return gitalert.Alert{ID: id}, nil
}

func (m *mockAlertRepo) SoftDeleteAlert(ctx context.Context, id string) error {
	if m.softDeleteAlertFunc != nil {
		return m.softDeleteAlertFunc(id)
	}
	return nil
}

func (m *mockAlertRepo) CreateRecipients(ctx context.Context, alertID string, userIDs []string) (int, error) {
	if m.createRecipientsFunc != nil {
		return m.createRecipientsFunc(alertID, userIDs)
	}
	return len(userIDs), nil
}

func (m *mockAlertRepo) ListRecipients(ctx context.Context, alertID string) ([]gitalert.Recipient, error) {
	if m.listRecipientsFunc != nil {
		return m.listRecipientsFunc(alertID)
	}
	return nil, nil
}

func (m *mockAlertRepo) MarkRecipientRead(ctx context.Context, alertID, userID string) (int, error) {
	if m.markRecipientReadFunc != nil {
		return m.markRecipientReadFunc(alertID, userID)
	}
	return 1, nil
}

// mockGitrepoRepo implements the gitrepo repository with overridable funcs.
type mockGitrepoRepo struct {
	getOneFunc func(opt gitrepoRepo.GetOneRepositoryOptions) (gitrepo.Repository, error)
}

func (m *mockGitrepoRepo) CreateRepository(ctx context.Context, opt gitrepoRepo.CreateRepositoryOptions) (gitrepo.Repository, error) {
	return gitrepo.Repository{}, nil
}

func (m *mockGitrepoRepo) GetOneRepository(ctx context.Context, opt gitrepoRepo.GetOneRepositoryOptions) (gitrepo.Repository, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return gitrepo.Repository{}, nil
}

func (m *mockGitrepoRepo) ListRepositories(ctx context.Context, opt gitrepoRepo.ListRepositoriesOptions) ([]gitrepo.Repository, int, error) {
	return nil, 0, nil
}

func (m *mockGitrepoRepo) UpdateRepository(ctx context.Context, opt gitrepoRepo.UpdateRepositoryOptions) (gitrepo.Repository, error) {
	return gitrepo.Repository{}, nil
}

func (m *mockGitrepoRepo) TouchLastSynced(ctx context.Context, opt gitrepoRepo.TouchLastSyncedOptions) error {
	return nil
}

func (m *mockGitrepoRepo) SoftDeleteRepository(ctx context.Context, id string) error {
	return nil
}

// mockUserRepo implements the user repository with an overridable func.
type mockUserRepo struct {
	getOneFunc func(opt userRepo.GetOneUserOptions) (user.User, error)
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (user.User, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return user.User{}, nil
}

// mockPolicy implements gitalert.RecipientPolicy with an overridable func.
type mockPolicy struct {
	resolveFunc func(projectID string) ([]string, error)
}

func (m *mockPolicy) Resolve(ctx context.Context, projectID string) ([]string, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(projectID)
	}
	return nil, nil
}
