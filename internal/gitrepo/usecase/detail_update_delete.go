package usecase

import (
	"context"

	"teamboard/internal/gitrepo"
	repo "teamboard/internal/gitrepo/repository"
	"teamboard/pkg/scope"
)

// Detail returns a single tracked repository by id.
func (uc *implUseCase) Detail(ctx context.Context, sc scope.Scope, id string) (gitrepo.DetailOutput, error) {
	rep, err := uc.repo.GetOneRepository(ctx, repo.GetOneRepositoryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRepository: %v", err)
		return gitrepo.DetailOutput{}, err
	}
	if rep.ID == "" {
		return gitrepo.DetailOutput{}, gitrepo.ErrRepositoryNotFound
	}

	return gitrepo.DetailOutput{Repository: rep}, nil
}

// UpdateSync mutates sync configuration. Identity fields are immutable after
// linking.
func (uc *implUseCase) UpdateSync(ctx context.Context, sc scope.Scope, input gitrepo.UpdateSyncInput) (gitrepo.UpdateSyncOutput, error) {
	existing, err := uc.repo.GetOneRepository(ctx, repo.GetOneRepositoryOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSync GetOneRepository: %v", err)
		return gitrepo.UpdateSyncOutput{}, err
	}
	if existing.ID == "" {
		return gitrepo.UpdateSyncOutput{}, gitrepo.ErrRepositoryNotFound
	}

	rep, err := uc.repo.UpdateRepository(ctx, repo.UpdateRepositoryOptions{
		ID:            input.ID,
		AccessToken:   input.AccessToken,
		WebhookSecret: input.WebhookSecret,
		SyncInterval:  input.SyncInterval,
		Enabled:       input.Enabled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSync UpdateRepository: %v", err)
		return gitrepo.UpdateSyncOutput{}, err
	}

	return gitrepo.UpdateSyncOutput{Repository: rep}, nil
}

// Delete soft-deletes a tracked repository. Existing alerts keep their rows;
// only the link disappears from read surfaces.
func (uc *implUseCase) Delete(ctx context.Context, sc scope.Scope, id string) error {
	existing, err := uc.repo.GetOneRepository(ctx, repo.GetOneRepositoryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneRepository: %v", err)
		return err
	}
	if existing.ID == "" {
		return gitrepo.ErrRepositoryNotFound
	}

	if err := uc.repo.SoftDeleteRepository(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete SoftDeleteRepository: %v", err)
		return err
	}

	uc.l.Infof(ctx, "Repository %s deleted by %s", id, sc.UserID)
	return nil
}
