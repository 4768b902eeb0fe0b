package postgre

import (
	"context"
	"database/sql"

	"teamboard/internal/project"
	repo "teamboard/internal/project/repository"
	"teamboard/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed read-only Repository for projects.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("project/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// GetOneProject retrieves a project by id.
// Returns zero-value Project (ID == "") when not found.
func (r *implRepository) GetOneProject(ctx context.Context, id string) (project.Project, error) {
	const query = `
		SELECT id, name, owner_id, created_at, updated_at, deleted_at
		FROM project
		WHERE id = $1 AND deleted_at IS NULL`

	var (
		p         project.Project
		deletedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt, &deletedAt,
	)
	if err == sql.ErrNoRows {
		return project.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "project/repository/postgre.GetOneProject: %v", err)
		return project.Project{}, repo.ErrFailedToGet
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		p.DeletedAt = &t
	}
	return p, nil
}

// ListActiveMemberIDs returns user ids of all active members of a project.
func (r *implRepository) ListActiveMemberIDs(ctx context.Context, projectID string) ([]string, error) {
	const query = `
		SELECT user_id FROM project_member
		WHERE project_id = $1 AND active
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		r.l.Errorf(ctx, "project/repository/postgre.ListActiveMemberIDs: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return ids, nil
}
