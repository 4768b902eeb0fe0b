package repository

import (
	"context"

	"teamboard/internal/gitalert"
)

// Repository is the composed interface for the git alert data store.
type Repository interface {
	AlertRepository
	RecipientRepository
}

// AlertRepository defines data access for the Alert entity.
// All read methods filter out soft-deleted rows.
type AlertRepository interface {
	// CreateAlert inserts a new alert. When the (repository, dedup key) pair
	// already exists the insert is a no-op and a zero-value Alert is returned
	// with no error — callers detect duplicates via Alert.ID == "".
	CreateAlert(ctx context.Context, opt CreateAlertOptions) (gitalert.Alert, error)

	// GetOneAlert returns a zero-value Alert (ID == "") when not found.
	GetOneAlert(ctx context.Context, opt GetOneAlertOptions) (gitalert.Alert, error)

	ListAlerts(ctx context.Context, opt ListAlertsOptions) ([]gitalert.Alert, int, error)
	SummarizeAlerts(ctx context.Context, opt SummarizeAlertsOptions) (gitalert.Summary, error)

	UpdateAlertStatus(ctx context.Context, id string, status string) (gitalert.Alert, error)
	SoftDeleteAlert(ctx context.Context, id string) error
}

// RecipientRepository defines data access for the per-user delivery records.
type RecipientRepository interface {
	// CreateRecipients writes the whole recipient set in one transaction.
	CreateRecipients(ctx context.Context, alertID string, userIDs []string) (int, error)

	ListRecipients(ctx context.Context, alertID string) ([]gitalert.Recipient, error)

	// MarkRecipientRead sets the read timestamp for the (alert, user) pair.
	// Returns the number of rows affected (0 when the pair does not exist).
	MarkRecipientRead(ctx context.Context, alertID, userID string) (int, error)
}
