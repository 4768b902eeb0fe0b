package usecase

import (
	"teamboard/internal/gitrepo/repository"
	projectRepo "teamboard/internal/project/repository"
	"teamboard/pkg/log"
)

// implUseCase is the private implementation of gitrepo.UseCase.
type implUseCase struct {
	repo        repository.Repository
	projectRepo projectRepo.Repository
	l           log.Logger
}

// New creates a new git repository UseCase implementation.
func New(repo repository.Repository, projectRepo projectRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		projectRepo: projectRepo,
		l:           l,
	}
}
