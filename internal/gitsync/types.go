package gitsync

import (
	"context"

	"teamboard/internal/gitrepo"
)

// RepoMetadata is the provider-side metadata refreshed by the sync worker.
type RepoMetadata struct {
	Name          string
	DefaultBranch string
}

// Fetcher pulls current metadata for a tracked repository from its provider.
type Fetcher interface {
	FetchMetadata(ctx context.Context, rep gitrepo.Repository) (RepoMetadata, error)
}
