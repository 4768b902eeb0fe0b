package gitalert

import (
	"context"

	"teamboard/pkg/scope"
)

// MaxPageLimit bounds the list page size.
const MaxPageLimit = 100

// DefaultPageLimit is applied when the caller omits a limit.
const DefaultPageLimit = 20

//go:generate mockery --name UseCase
type UseCase interface {
	// Ingest persists a normalized event as an alert and fans it out to
	// recipients. Duplicate deliveries are absorbed (Created == false).
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)

	// Query surface
	List(ctx context.Context, sc scope.Scope, input ListInput) (ListOutput, error)
	Summary(ctx context.Context, sc scope.Scope, input SummaryInput) (Summary, error)
	Detail(ctx context.Context, sc scope.Scope, id string) (DetailOutput, error)

	// Soft mutations
	UpdateStatus(ctx context.Context, sc scope.Scope, input UpdateStatusInput) (UpdateStatusOutput, error)
	MarkRead(ctx context.Context, sc scope.Scope, alertID string) error
	Delete(ctx context.Context, sc scope.Scope, id string) error
}

// RecipientPolicy derives the recipient set for a freshly persisted alert.
// The membership policy is project-level configuration, so it stays pluggable.
type RecipientPolicy interface {
	Resolve(ctx context.Context, projectID string) ([]string, error)
}
