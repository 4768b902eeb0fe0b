package usecase

import (
	"context"

	"teamboard/internal/gitrepo"
	repo "teamboard/internal/gitrepo/repository"
	"teamboard/pkg/scope"
)

// List returns a page of tracked repositories. Page is 1-indexed.
func (uc *implUseCase) List(ctx context.Context, sc scope.Scope, input gitrepo.ListInput) (gitrepo.ListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = gitrepo.DefaultPageLimit
	}
	if limit > gitrepo.MaxPageLimit {
		limit = gitrepo.MaxPageLimit
	}

	repos, total, err := uc.repo.ListRepositories(ctx, repo.ListRepositoriesOptions{
		ProjectID: input.ProjectID,
		Provider:  string(input.Provider),
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRepositories: %v", err)
		return gitrepo.ListOutput{}, err
	}

	return gitrepo.ListOutput{
		Repositories: repos,
		Total:        total,
		Page:         page,
		Limit:        limit,
	}, nil
}
