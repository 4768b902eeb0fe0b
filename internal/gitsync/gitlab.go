package gitsync

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"teamboard/internal/gitrepo"
)

// gitlabFetcher pulls project metadata through the GitLab API.
type gitlabFetcher struct{}

// NewGitLabFetcher creates a Fetcher for GitLab-hosted repositories.
func NewGitLabFetcher() Fetcher {
	return &gitlabFetcher{}
}

func (f *gitlabFetcher) FetchMetadata(ctx context.Context, rep gitrepo.Repository) (RepoMetadata, error) {
	baseURL, path, err := splitGitLabURL(rep.RemoteURL)
	if err != nil {
		return RepoMetadata{}, err
	}

	client, err := gitlab.NewClient(rep.AccessToken, gitlab.WithBaseURL(baseURL))
	if err != nil {
		return RepoMetadata{}, fmt.Errorf("failed to create gitlab client: %w", err)
	}

	// Numeric id is the stable identity; the namespace path covers repos
	// linked before their external id was known.
	var pid interface{} = path
	if rep.ExternalID > 0 {
		pid = int(rep.ExternalID)
	}

	project, _, err := client.Projects.GetProject(pid, nil, gitlab.WithContext(ctx))
	if err != nil {
		return RepoMetadata{}, fmt.Errorf("failed to fetch project %v: %w", pid, err)
	}

	return RepoMetadata{
		Name:          project.PathWithNamespace,
		DefaultBranch: project.DefaultBranch,
	}, nil
}

// splitGitLabURL splits a project web URL into the instance base URL and the
// namespace path (https://gitlab.com/group/proj → https://gitlab.com, group/proj).
func splitGitLabURL(remoteURL string) (string, string, error) {
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid remote url %q: %w", remoteURL, err)
	}
	path := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if u.Host == "" || path == "" {
		return "", "", fmt.Errorf("remote url %q carries no project path", remoteURL)
	}
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), path, nil
}
