package usecase

import (
	"context"

	projectRepo "teamboard/internal/project/repository"
	"teamboard/pkg/log"
)

// ProjectMembersPolicy is the default recipient policy: every active member
// of the owning project receives the alert. Swap the policy at wiring time to
// change the distribution rule (e.g. explicit subscription lists).
type ProjectMembersPolicy struct {
	projects projectRepo.Repository
	l        log.Logger
}

// NewProjectMembersPolicy creates the default membership-based policy.
func NewProjectMembersPolicy(projects projectRepo.Repository, l log.Logger) *ProjectMembersPolicy {
	return &ProjectMembersPolicy{projects: projects, l: l}
}

func (p *ProjectMembersPolicy) Resolve(ctx context.Context, projectID string) ([]string, error) {
	return p.projects.ListActiveMemberIDs(ctx, projectID)
}
