package repository

import "time"

// CreateRepositoryOptions holds parameters for linking a repository.
type CreateRepositoryOptions struct {
	ID            string
	Name          string
	RemoteURL     string
	Provider      string
	ExternalID    int64
	AccessToken   string
	WebhookSecret string
	ProjectID     string
	SyncInterval  time.Duration
}

// GetOneRepositoryOptions holds filter parameters for fetching a single
// repository. All non-zero fields are applied as AND conditions, except
// RemoteURL/ExternalID which are OR-ed together as the remote identity match.
type GetOneRepositoryOptions struct {
	ID         string
	Provider   string
	RemoteURL  string
	ExternalID int64
	ProjectID  string
}

// ListRepositoriesOptions holds filter and pagination parameters.
type ListRepositoriesOptions struct {
	ProjectID   string
	Provider    string
	EnabledOnly bool
	// SyncDueBefore selects repos whose last sync is older than now minus
	// their own sync interval — the sync worker's work queue.
	SyncDue bool
	Limit   int
	Offset  int
}

// UpdateRepositoryOptions mutates sync configuration. Nil pointers leave the
// corresponding column untouched.
type UpdateRepositoryOptions struct {
	ID            string
	AccessToken   *string
	WebhookSecret *string
	SyncInterval  *time.Duration
	Enabled       *bool
}

// TouchLastSyncedOptions records a completed metadata sync.
type TouchLastSyncedOptions struct {
	ID            string
	Name          string // empty → unchanged
	DefaultBranch string // empty → unchanged
	SyncedAt      time.Time
}
