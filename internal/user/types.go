package user

import "time"

// User is an application account. The provider usernames link accounts to
// webhook actors: a GitHub login or GitLab username reported in an event
// resolves to the account carrying it.
type User struct {
	ID             string
	Email          string
	DisplayName    string
	GitHubUsername string
	GitLabUsername string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
