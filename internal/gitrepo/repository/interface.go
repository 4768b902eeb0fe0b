package repository

import (
	"context"

	"teamboard/internal/gitrepo"
)

// Repository defines data access for tracked git repositories.
// All read methods filter out soft-deleted rows.
type Repository interface {
	CreateRepository(ctx context.Context, opt CreateRepositoryOptions) (gitrepo.Repository, error)

	// GetOneRepository returns a zero-value Repository (ID == "") when not
	// found. Remote identity lookups (provider + URL or external id) are the
	// normalizer's resolution path.
	GetOneRepository(ctx context.Context, opt GetOneRepositoryOptions) (gitrepo.Repository, error)

	ListRepositories(ctx context.Context, opt ListRepositoriesOptions) ([]gitrepo.Repository, int, error)

	UpdateRepository(ctx context.Context, opt UpdateRepositoryOptions) (gitrepo.Repository, error)

	// TouchLastSynced advances last_synced_at and optionally refreshed metadata.
	TouchLastSynced(ctx context.Context, opt TouchLastSyncedOptions) error

	SoftDeleteRepository(ctx context.Context, id string) error
}
