package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
	"teamboard/internal/model"
)

const alertColumns = `id, title, description, type, status, priority, tags,
	branch, commit_hash, pr_number, issue_number, external_url,
	is_actionable, required_action, event_at,
	repository_id, project_id, triggered_by, dedup_key,
	created_at, updated_at, deleted_at`

// scanAlert scans one git_alert row in alertColumns order.
func scanAlert(row interface{ Scan(...any) error }) (gitalert.Alert, error) {
	var (
		a           gitalert.Alert
		tags        pq.StringArray
		triggeredBy sql.NullString
		deletedAt   sql.NullTime
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Type, &a.Status, &a.Priority, &tags,
		&a.Branch, &a.Commit, &a.PRNumber, &a.IssueNumber, &a.ExternalURL,
		&a.IsActionable, &a.RequiredAction, &a.EventAt,
		&a.RepositoryID, &a.ProjectID, &triggeredBy, &a.DedupKey,
		&a.CreatedAt, &a.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return gitalert.Alert{}, err
	}
	a.Tags = []string(tags)
	if triggeredBy.Valid {
		a.TriggeredBy = &triggeredBy.String
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		a.DeletedAt = &t
	}
	return a, nil
}

// CreateAlert inserts a new alert row. The (repository_id, dedup_key) unique
// index absorbs duplicate provider deliveries: on conflict nothing is inserted
// and a zero-value Alert is returned without error.
func (r *implRepository) CreateAlert(ctx context.Context, opt repo.CreateAlertOptions) (gitalert.Alert, error) {
	query := `
		INSERT INTO git_alert (
			id, title, description, type, status, priority, tags,
			branch, commit_hash, pr_number, issue_number, external_url,
			is_actionable, required_action, event_at,
			repository_id, project_id, triggered_by, dedup_key,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
		ON CONFLICT (repository_id, dedup_key) DO NOTHING
		RETURNING ` + alertColumns

	var triggeredBy sql.NullString
	if opt.TriggeredBy != nil {
		triggeredBy = sql.NullString{String: *opt.TriggeredBy, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Title, opt.Description, opt.Type, string(model.AlertStatusNew), opt.Priority,
		pq.Array(opt.Tags),
		opt.Branch, opt.Commit, opt.PRNumber, opt.IssueNumber, opt.ExternalURL,
		opt.IsActionable, opt.RequiredAction, opt.EventAt,
		opt.RepositoryID, opt.ProjectID, triggeredBy, opt.DedupKey,
	)

	alert, err := scanAlert(row)
	if err == sql.ErrNoRows {
		// Conflict path: duplicate delivery, nothing inserted.
		return gitalert.Alert{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAlert"), err)
		return gitalert.Alert{}, repo.ErrFailedToInsert
	}
	return alert, nil
}

// GetOneAlert retrieves a single alert by the provided filters (AND condition).
// Returns zero-value Alert (ID == "") when not found.
func (r *implRepository) GetOneAlert(ctx context.Context, opt repo.GetOneAlertOptions) (gitalert.Alert, error) {
	conditions := "deleted_at IS NULL"
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions += fmt.Sprintf(" AND id = $%d", idx)
		args = append(args, opt.ID)
		idx++
	}
	if opt.DedupKey != "" {
		conditions += fmt.Sprintf(" AND dedup_key = $%d", idx)
		args = append(args, opt.DedupKey)
		idx++
	}

	query := "SELECT " + alertColumns + " FROM git_alert WHERE " + conditions + " LIMIT 1"

	alert, err := scanAlert(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return gitalert.Alert{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAlert"), err)
		return gitalert.Alert{}, repo.ErrFailedToGet
	}
	return alert, nil
}

// UpdateAlertStatus mutates only the soft status field.
func (r *implRepository) UpdateAlertStatus(ctx context.Context, id string, status string) (gitalert.Alert, error) {
	query := `
		UPDATE git_alert
		SET status = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
		RETURNING ` + alertColumns

	alert, err := scanAlert(r.db.QueryRowContext(ctx, query, status, time.Now(), id))
	if err == sql.ErrNoRows {
		return gitalert.Alert{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateAlertStatus"), err)
		return gitalert.Alert{}, repo.ErrFailedToUpdate
	}
	return alert, nil
}

// SoftDeleteAlert marks an alert deleted; rows are never physically removed here.
func (r *implRepository) SoftDeleteAlert(ctx context.Context, id string) error {
	const query = `UPDATE git_alert SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SoftDeleteAlert"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
