package webhook

// SecurityConfig holds webhook security settings. The provider secrets are
// global fallbacks; a repository's own webhook secret takes precedence.
type SecurityConfig struct {
	GitHubSecret    string
	GitLabToken     string
	AllowedIPs      []string // IP allowlist (optional)
	RateLimitPerMin int
}

// repoIdentity is the minimal pre-parse of a payload: just enough to resolve
// the tracked repository (and with it the verification secret) before the
// event-specific parse runs.
type repoIdentity struct {
	ExternalID int64
	FullName   string
	RemoteURL  string
}
