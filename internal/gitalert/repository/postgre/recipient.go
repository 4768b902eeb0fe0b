package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"teamboard/internal/gitalert"
	repo "teamboard/internal/gitalert/repository"
)

// CreateRecipients writes the whole recipient set for one alert in a single
// transaction, so a crash never leaves a partial fan-out. The unique
// (alert_id, recipient_id) index makes re-runs safe.
func (r *implRepository) CreateRecipients(ctx context.Context, alertID string, userIDs []string) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateRecipients"), err)
		return 0, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO git_alert_recipient (id, alert_id, recipient_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (alert_id, recipient_id) DO NOTHING`

	created := 0
	for _, userID := range userIDs {
		res, err := tx.ExecContext(ctx, query, uuid.NewString(), alertID, userID)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRecipients"), err)
			return 0, repo.ErrFailedToInsert
		}
		if n, _ := res.RowsAffected(); n > 0 {
			created++
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateRecipients"), err)
		return 0, repo.ErrFailedToInsert
	}
	return created, nil
}

// ListRecipients returns all delivery records for an alert.
func (r *implRepository) ListRecipients(ctx context.Context, alertID string) ([]gitalert.Recipient, error) {
	const query = `
		SELECT id, alert_id, recipient_id, read_at, created_at
		FROM git_alert_recipient
		WHERE alert_id = $1
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, alertID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecipients"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var recipients []gitalert.Recipient
	for rows.Next() {
		var rec gitalert.Recipient
		var readAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.AlertID, &rec.RecipientID, &readAt, &rec.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		if readAt.Valid {
			t := readAt.Time
			rec.ReadAt = &t
		}
		recipients = append(recipients, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return recipients, nil
}

// MarkRecipientRead sets the read timestamp. Idempotent: an already-read row
// keeps its original timestamp but still counts as affected.
func (r *implRepository) MarkRecipientRead(ctx context.Context, alertID, userID string) (int, error) {
	const query = `
		UPDATE git_alert_recipient
		SET read_at = COALESCE(read_at, NOW())
		WHERE alert_id = $1 AND recipient_id = $2`

	res, err := r.db.ExecContext(ctx, query, alertID, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkRecipientRead"), err)
		return 0, repo.ErrFailedToUpdate
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
