package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"teamboard/internal/gitalert"
	"teamboard/internal/gitalert/repository"
	gitrepoRepo "teamboard/internal/gitrepo/repository"
	userRepo "teamboard/internal/user/repository"
	"teamboard/pkg/log"
)

// implUseCase is the private implementation of gitalert.UseCase.
type implUseCase struct {
	repo        repository.Repository
	gitrepoRepo gitrepoRepo.Repository
	userRepo    userRepo.Repository
	policy      gitalert.RecipientPolicy
	l           log.Logger

	// dedupCache short-circuits repeat deliveries before hitting the unique
	// index. The index remains the durable guarantee; this is the fast path.
	dedupCache *expirable.LRU[string, struct{}]
}

// Config tunes the ingestion pipeline.
type Config struct {
	DedupCacheSize int
	DedupCacheTTL  time.Duration
}

// New creates a new git alert UseCase implementation.
func New(
	repo repository.Repository,
	gitrepoRepo gitrepoRepo.Repository,
	userRepo userRepo.Repository,
	policy gitalert.RecipientPolicy,
	cfg Config,
	l log.Logger,
) *implUseCase {
	size := cfg.DedupCacheSize
	if size <= 0 {
		size = 4096
	}
	ttl := cfg.DedupCacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &implUseCase{
		repo:        repo,
		gitrepoRepo: gitrepoRepo,
		userRepo:    userRepo,
		policy:      policy,
		l:           l,
		dedupCache:  expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}
