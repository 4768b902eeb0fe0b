package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"teamboard/internal/user"
	repo "teamboard/internal/user/repository"
	"teamboard/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed read-only Repository for users.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("user/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// GetOneUser retrieves a single user by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.GitHubUsername != "" {
		conditions = append(conditions, fmt.Sprintf("github_username = $%d", idx))
		args = append(args, opt.GitHubUsername)
		idx++
	}
	if opt.GitLabUsername != "" {
		conditions = append(conditions, fmt.Sprintf("gitlab_username = $%d", idx))
		args = append(args, opt.GitLabUsername)
		idx++
	}
	if len(conditions) == 0 {
		return user.User{}, nil
	}

	query := fmt.Sprintf(`
		SELECT id, email, display_name, COALESCE(github_username, ''), COALESCE(gitlab_username, ''), created_at, updated_at
		FROM users WHERE %s LIMIT 1`, strings.Join(conditions, " AND "))

	var u user.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.GitHubUsername, &u.GitLabUsername, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/postgre.GetOneUser: %v", err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
