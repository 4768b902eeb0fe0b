package gitsync

import (
	"context"
	"time"

	"teamboard/internal/gitrepo"
	repo "teamboard/internal/gitrepo/repository"
	"teamboard/internal/model"
	pkgLog "teamboard/pkg/log"
)

const (
	// batchSize bounds how many due repositories one tick picks up.
	batchSize = 50

	// syncTimeout bounds a single repository's metadata refresh.
	syncTimeout = 30 * time.Second
)

// Worker periodically refreshes provider-side metadata for repositories whose
// sync interval has elapsed.
type Worker struct {
	repo     repo.Repository
	fetchers map[model.Provider]Fetcher
	interval time.Duration
	l        pkgLog.Logger
}

// NewWorker creates a metadata sync worker. interval is the tick period, not
// the per-repository sync interval (that lives on each repository row).
func NewWorker(gitrepoRepo repo.Repository, interval time.Duration, l pkgLog.Logger) *Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Worker{
		repo: gitrepoRepo,
		fetchers: map[model.Provider]Fetcher{
			model.ProviderGitHub: NewGitHubFetcher(),
			model.ProviderGitLab: NewGitLabFetcher(),
		},
		interval: interval,
		l:        l,
	}
}

// Run blocks until ctx is cancelled, syncing due repositories on each tick.
func (w *Worker) Run(ctx context.Context) {
	w.l.Infof(ctx, "Sync worker started (tick %s)", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.l.Infof(ctx, "Sync worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	repos, _, err := w.repo.ListRepositories(ctx, repo.ListRepositoriesOptions{
		EnabledOnly: true,
		SyncDue:     true,
		Limit:       batchSize,
	})
	if err != nil {
		w.l.Errorf(ctx, "Sync worker: failed to list due repositories: %v", err)
		return
	}
	if len(repos) == 0 {
		return
	}

	w.l.Infof(ctx, "Sync worker: %d repositories due", len(repos))
	for _, rep := range repos {
		// One failing repository never blocks the rest of the batch.
		w.syncOne(ctx, rep)
	}
}

func (w *Worker) syncOne(ctx context.Context, rep gitrepo.Repository) {
	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	fetcher, ok := w.fetchers[rep.Provider]
	if !ok {
		w.l.Warnf(ctx, "Sync worker: no fetcher for provider %s (repo %s)", rep.Provider, rep.ID)
		return
	}

	meta, err := fetcher.FetchMetadata(ctx, rep)
	if err != nil {
		w.l.Warnf(ctx, "Sync worker: metadata fetch failed for %s: %v", rep.ID, err)
		return
	}

	if err := w.repo.TouchLastSynced(ctx, repo.TouchLastSyncedOptions{
		ID:            rep.ID,
		Name:          meta.Name,
		DefaultBranch: meta.DefaultBranch,
		SyncedAt:      time.Now(),
	}); err != nil {
		w.l.Errorf(ctx, "Sync worker: failed to record sync for %s: %v", rep.ID, err)
		return
	}

	w.l.Debugf(ctx, "Sync worker: refreshed %s (branch %s)", rep.ID, meta.DefaultBranch)
}
