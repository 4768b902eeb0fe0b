package repository

import (
	"context"

	"teamboard/internal/project"
)

// Repository defines read access to projects and their membership.
// Alert fan-out derives its default recipient set from ListActiveMemberIDs.
type Repository interface {
	// GetOneProject returns a zero-value Project (ID == "") when not found.
	GetOneProject(ctx context.Context, id string) (project.Project, error)

	// ListActiveMemberIDs returns user ids of all active project members.
	ListActiveMemberIDs(ctx context.Context, projectID string) ([]string, error)
}
