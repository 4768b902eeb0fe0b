package repository

import (
	"context"

	"teamboard/internal/user"
)

// Repository defines read access to user accounts for actor resolution.
type Repository interface {
	// GetOneUser returns a zero-value User (ID == "") when not found.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
}

// GetOneUserOptions holds filter parameters. All non-empty fields are applied
// as AND conditions.
type GetOneUserOptions struct {
	ID             string
	GitHubUsername string
	GitLabUsername string
}
