package gitrepo

import (
	"time"

	"teamboard/internal/model"
)

// Repository is a tracked external git repository linked to a project.
type Repository struct {
	ID         string
	Name       string
	RemoteURL  string
	Provider   model.Provider
	ExternalID int64 // provider-side repository id, 0 when unknown

	// Webhook/API credentials. AccessToken is used by the sync worker;
	// WebhookSecret overrides the global secret during signature verification.
	AccessToken   string
	WebhookSecret string

	ProjectID string

	SyncInterval  time.Duration
	LastSyncedAt  *time.Time
	DefaultBranch string
	Enabled       bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// --- UseCase Inputs ---

type LinkInput struct {
	Name          string
	RemoteURL     string
	Provider      model.Provider
	ExternalID    int64
	AccessToken   string
	WebhookSecret string
	ProjectID     string
	SyncInterval  time.Duration
}

type ListInput struct {
	ProjectID string
	Provider  model.Provider
	Page      int
	Limit     int
}

// UpdateSyncInput mutates sync configuration only; identity fields are fixed
// at link time.
type UpdateSyncInput struct {
	ID            string
	AccessToken   *string
	WebhookSecret *string
	SyncInterval  *time.Duration
	Enabled       *bool
}

// --- UseCase Outputs ---

type LinkOutput struct {
	Repository Repository
}

type ListOutput struct {
	Repositories []Repository
	Total        int
	Page         int
	Limit        int
}

type DetailOutput struct {
	Repository Repository
}

type UpdateSyncOutput struct {
	Repository Repository
}
