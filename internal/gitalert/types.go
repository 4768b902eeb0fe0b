package gitalert

import (
	"time"

	"teamboard/internal/model"
)

// Alert is the canonical normalized git event. Created once by ingestion;
// only soft fields (status) mutate afterwards; removal is soft-delete only.
type Alert struct {
	ID          string
	Title       string
	Description string
	Type        model.AlertType
	Status      model.AlertStatus
	Priority    model.AlertPriority
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
	TriggeredBy  *string // nil when the actor is external/unknown

	DedupKey string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Recipient is the per-user delivery/read record for an alert.
// At most one row exists per (alert, recipient) pair.
type Recipient struct {
	ID          string
	AlertID     string
	RecipientID string
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// --- UseCase Inputs ---

// IngestInput carries a normalized provider event into the pipeline.
type IngestInput struct {
	Event model.NormalizedEvent
}

// ListInput holds the filter and pagination parameters of the list surface.
// Page is 1-indexed; Limit is clamped to [1, MaxPageLimit] by the use case.
type ListInput struct {
	Search       string
	Type         model.AlertType
	Status       model.AlertStatus
	Priority     model.AlertPriority
	Branch       string
	RepositoryID string
	Actionable   *bool
	TriggeredBy  string
	From         *time.Time
	To           *time.Time
	Page         int
	Limit        int
}

// SummaryInput scopes aggregate counts; it accepts the same filters as ListInput.
type SummaryInput struct {
	Search       string
	Type         model.AlertType
	Status       model.AlertStatus
	Priority     model.AlertPriority
	Branch       string
	RepositoryID string
	Actionable   *bool
	TriggeredBy  string
	From         *time.Time
	To           *time.Time
}

type UpdateStatusInput struct {
	ID     string
	Status model.AlertStatus
}

// --- UseCase Outputs ---

// IngestOutput reports what the pipeline did with an event.
type IngestOutput struct {
	Alert      Alert
	Created    bool // false when the event was a duplicate delivery
	Recipients int  // number of fan-out rows written
}

type ListOutput struct {
	Alerts []Alert
	Total  int
	Page   int
	Limit  int
}

// Summary holds aggregate counts over a filter scope.
// Invariant: the by_status values sum to Total.
type Summary struct {
	Total      int
	Unread     int
	Actionable int
	ByType     map[string]int
	ByStatus   map[string]int
	ByPriority map[string]int
}

type DetailOutput struct {
	Alert      Alert
	Recipients []Recipient
}

type UpdateStatusOutput struct {
	Alert Alert
}
