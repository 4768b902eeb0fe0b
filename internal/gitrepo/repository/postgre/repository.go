package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"teamboard/internal/gitrepo"
	repo "teamboard/internal/gitrepo/repository"
)

const repoColumns = `id, name, remote_url, provider, external_id,
	access_token, webhook_secret, project_id,
	sync_interval_seconds, last_synced_at, default_branch, enabled,
	created_at, updated_at, deleted_at`

func scanRepository(row interface{ Scan(...any) error }) (gitrepo.Repository, error) {
	var (
		rep          gitrepo.Repository
		intervalSecs int64
		lastSynced   sql.NullTime
		deletedAt    sql.NullTime
	)
	err := row.Scan(
		&rep.ID, &rep.Name, &rep.RemoteURL, &rep.Provider, &rep.ExternalID,
		&rep.AccessToken, &rep.WebhookSecret, &rep.ProjectID,
		&intervalSecs, &lastSynced, &rep.DefaultBranch, &rep.Enabled,
		&rep.CreatedAt, &rep.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return gitrepo.Repository{}, err
	}
	rep.SyncInterval = time.Duration(intervalSecs) * time.Second
	if lastSynced.Valid {
		t := lastSynced.Time
		rep.LastSyncedAt = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		rep.DeletedAt = &t
	}
	return rep, nil
}

// CreateRepository links a repository to a project.
func (r *implRepository) CreateRepository(ctx context.Context, opt repo.CreateRepositoryOptions) (gitrepo.Repository, error) {
	query := `
		INSERT INTO git_repository (
			id, name, remote_url, provider, external_id,
			access_token, webhook_secret, project_id,
			sync_interval_seconds, enabled, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, NOW(), NOW())
		RETURNING ` + repoColumns

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Name, opt.RemoteURL, opt.Provider, opt.ExternalID,
		opt.AccessToken, opt.WebhookSecret, opt.ProjectID,
		int64(opt.SyncInterval/time.Second),
	)
	rep, err := scanRepository(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRepository"), err)
		return gitrepo.Repository{}, repo.ErrFailedToInsert
	}
	return rep, nil
}

// GetOneRepository retrieves a single repository. Remote identity (URL or
// provider repository id) is matched as an OR so either form resolves.
// Returns zero-value Repository (ID == "") when not found.
func (r *implRepository) GetOneRepository(ctx context.Context, opt repo.GetOneRepositoryOptions) (gitrepo.Repository, error) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Provider != "" {
		conditions = append(conditions, fmt.Sprintf("provider = $%d", idx))
		args = append(args, opt.Provider)
		idx++
	}
	if opt.ProjectID != "" {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", idx))
		args = append(args, opt.ProjectID)
		idx++
	}

	var identity []string
	if opt.RemoteURL != "" {
		identity = append(identity, fmt.Sprintf("remote_url = $%d", idx))
		args = append(args, opt.RemoteURL)
		idx++
	}
	if opt.ExternalID != 0 {
		identity = append(identity, fmt.Sprintf("external_id = $%d", idx))
		args = append(args, opt.ExternalID)
		idx++
	}
	if len(identity) > 0 {
		conditions = append(conditions, "("+strings.Join(identity, " OR ")+")")
	}

	query := fmt.Sprintf("SELECT %s FROM git_repository WHERE %s LIMIT 1",
		repoColumns, strings.Join(conditions, " AND "))

	rep, err := scanRepository(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return gitrepo.Repository{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRepository"), err)
		return gitrepo.Repository{}, repo.ErrFailedToGet
	}
	return rep, nil
}

// ListRepositories returns a filtered page and the total count.
func (r *implRepository) ListRepositories(ctx context.Context, opt repo.ListRepositoriesOptions) ([]gitrepo.Repository, int, error) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any
	idx := 1

	if opt.ProjectID != "" {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", idx))
		args = append(args, opt.ProjectID)
		idx++
	}
	if opt.Provider != "" {
		conditions = append(conditions, fmt.Sprintf("provider = $%d", idx))
		args = append(args, opt.Provider)
		idx++
	}
	if opt.EnabledOnly {
		conditions = append(conditions, "enabled")
	}
	if opt.SyncDue {
		conditions = append(conditions,
			"(last_synced_at IS NULL OR last_synced_at < NOW() - sync_interval_seconds * INTERVAL '1 second')")
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM git_repository WHERE " + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListRepositories"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM git_repository WHERE %s ORDER BY created_at DESC", repoColumns, where)
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRepositories"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var reps []gitrepo.Repository
	for rows.Next() {
		rep, scanErr := scanRepository(rows)
		if scanErr != nil {
			return nil, 0, repo.ErrFailedToList
		}
		reps = append(reps, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return reps, total, nil
}

// UpdateRepository applies a partial sync-config update.
func (r *implRepository) UpdateRepository(ctx context.Context, opt repo.UpdateRepositoryOptions) (gitrepo.Repository, error) {
	sets := []string{"updated_at = NOW()"}
	var args []any
	idx := 1

	if opt.AccessToken != nil {
		sets = append(sets, fmt.Sprintf("access_token = $%d", idx))
		args = append(args, *opt.AccessToken)
		idx++
	}
	if opt.WebhookSecret != nil {
		sets = append(sets, fmt.Sprintf("webhook_secret = $%d", idx))
		args = append(args, *opt.WebhookSecret)
		idx++
	}
	if opt.SyncInterval != nil {
		sets = append(sets, fmt.Sprintf("sync_interval_seconds = $%d", idx))
		args = append(args, int64(*opt.SyncInterval/time.Second))
		idx++
	}
	if opt.Enabled != nil {
		sets = append(sets, fmt.Sprintf("enabled = $%d", idx))
		args = append(args, *opt.Enabled)
		idx++
	}

	query := fmt.Sprintf(
		"UPDATE git_repository SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING %s",
		strings.Join(sets, ", "), idx, repoColumns)
	args = append(args, opt.ID)

	rep, err := scanRepository(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return gitrepo.Repository{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRepository"), err)
		return gitrepo.Repository{}, repo.ErrFailedToUpdate
	}
	return rep, nil
}

// TouchLastSynced records a completed metadata sync.
func (r *implRepository) TouchLastSynced(ctx context.Context, opt repo.TouchLastSyncedOptions) error {
	const query = `
		UPDATE git_repository
		SET last_synced_at = $1,
			name = COALESCE(NULLIF($2, ''), name),
			default_branch = COALESCE(NULLIF($3, ''), default_branch),
			updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, opt.SyncedAt, opt.Name, opt.DefaultBranch, opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchLastSynced"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// SoftDeleteRepository marks a repository deleted. Alert rows cascade on
// physical deletion only; soft-deleted repositories simply stop matching.
func (r *implRepository) SoftDeleteRepository(ctx context.Context, id string) error {
	const query = `UPDATE git_repository SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SoftDeleteRepository"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
