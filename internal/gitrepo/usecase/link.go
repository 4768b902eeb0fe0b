package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"teamboard/internal/gitrepo"
	repo "teamboard/internal/gitrepo/repository"
	"teamboard/pkg/scope"
)

const defaultSyncInterval = time.Hour

// Link attaches an external repository to a project. The remote identity
// (provider + URL or external id) must not already be linked to the project.
func (uc *implUseCase) Link(ctx context.Context, sc scope.Scope, input gitrepo.LinkInput) (gitrepo.LinkOutput, error) {
	if !input.Provider.IsValid() {
		return gitrepo.LinkOutput{}, gitrepo.ErrInvalidProvider
	}

	proj, err := uc.projectRepo.GetOneProject(ctx, input.ProjectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Link GetOneProject: %v", err)
		return gitrepo.LinkOutput{}, err
	}
	if proj.ID == "" {
		return gitrepo.LinkOutput{}, gitrepo.ErrProjectNotFound
	}

	existing, err := uc.repo.GetOneRepository(ctx, repo.GetOneRepositoryOptions{
		Provider:   string(input.Provider),
		RemoteURL:  input.RemoteURL,
		ExternalID: input.ExternalID,
		ProjectID:  input.ProjectID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Link GetOneRepository: %v", err)
		return gitrepo.LinkOutput{}, err
	}
	if existing.ID != "" {
		return gitrepo.LinkOutput{}, gitrepo.ErrDuplicateRemote
	}

	interval := input.SyncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	rep, err := uc.repo.CreateRepository(ctx, repo.CreateRepositoryOptions{
		ID:            uuid.NewString(),
		Name:          input.Name,
		RemoteURL:     input.RemoteURL,
		Provider:      string(input.Provider),
		ExternalID:    input.ExternalID,
		AccessToken:   input.AccessToken,
		WebhookSecret: input.WebhookSecret,
		ProjectID:     input.ProjectID,
		SyncInterval:  interval,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Link CreateRepository: %v", err)
		return gitrepo.LinkOutput{}, err
	}

	uc.l.Infof(ctx, "Repository %s linked to project %s by %s", rep.ID, input.ProjectID, sc.UserID)
	return gitrepo.LinkOutput{Repository: rep}, nil
}
