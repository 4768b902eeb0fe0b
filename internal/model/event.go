package model

import "time"

// NormalizedEvent is the provider-agnostic representation of an inbound
// webhook event, produced by the provider parsers and consumed by the
// alert ingestion pipeline.
type NormalizedEvent struct {
	Provider   Provider
	DeliveryID string // provider delivery id (dedup key when present)

	// Repository identity as reported by the provider.
	RepoFullName   string
	RepoRemoteURL  string
	RepoExternalID int64

	Type        AlertType
	Title       string
	Description string
	Priority    AlertPriority

	Branch      string
	Commit      string
	PRNumber    int
	IssueNumber int
	ExternalURL string

	ActorUsername string // provider login of the triggering user

	IsActionable   bool
	RequiredAction string

	EventAt    time.Time
	ReceivedAt time.Time
}
