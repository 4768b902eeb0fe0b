package gitrepo

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
	Link(ctx context.Context, sc scope.Scope, input LinkInput) (LinkOutput, error)
	List(ctx context.Context, sc scope.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc scope.Scope, id string) (DetailOutput, error)
	UpdateSync(ctx context.Context, sc scope.Scope, input UpdateSyncInput) (UpdateSyncOutput, error)
	Delete(ctx context.Context, sc scope.Scope, id string) error
}
