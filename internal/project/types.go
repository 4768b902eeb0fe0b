package project

import "time"

// Project is the owning container for repositories and alerts. CRUD for
// projects lives in the main application surface; this backend only reads.
type Project struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Member is a user's membership in a project.
type Member struct {
	ID        string
	ProjectID string
	UserID    string
	Role      string
	Active    bool
	CreatedAt time.Time
}
