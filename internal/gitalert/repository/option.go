package repository

import "time"

// CreateAlertOptions holds parameters for inserting a new alert.
type CreateAlertOptions struct {
	ID          string
	Title       string
	Description string
	Type        string
	Priority    string
	Tags        []string

	Branch      string
	Commit      string
	PRNumber    int
	IssueNumber int
	ExternalURL string

	IsActionable   bool
	RequiredAction string

	EventAt time.Time

	RepositoryID string
	ProjectID    string
	TriggeredBy  *string

	DedupKey string
}

// GetOneAlertOptions holds filter parameters for fetching a single alert.
// All non-empty fields are applied as AND conditions.
type GetOneAlertOptions struct {
	ID       string
	DedupKey string
}

// AlertFilter is the shared filter scope of list and summary queries.
type AlertFilter struct {
	Search       string
	Type         string
	Status       string
	Priority     string
	Branch       string
	RepositoryID string
	Actionable   *bool
	TriggeredBy  string
	From         *time.Time
	To           *time.Time
}

// ListAlertsOptions holds filter and pagination parameters for listing alerts.
type ListAlertsOptions struct {
	Filter  AlertFilter
	Limit   int
	Offset  int
	OrderBy string
}

// SummarizeAlertsOptions scopes the aggregate counts. UnreadUserID, when set,
// computes the unread count against that user's recipient read state.
type SummarizeAlertsOptions struct {
	Filter       AlertFilter
	UnreadUserID string
}
