package gitsync

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v52/github"
	"golang.org/x/oauth2"

	"teamboard/internal/gitrepo"
)

// githubFetcher pulls repository metadata through the GitHub REST API.
type githubFetcher struct{}

// NewGitHubFetcher creates a Fetcher for GitHub-hosted repositories.
func NewGitHubFetcher() Fetcher {
	return &githubFetcher{}
}

func (f *githubFetcher) FetchMetadata(ctx context.Context, rep gitrepo.Repository) (RepoMetadata, error) {
	owner, name, err := splitGitHubURL(rep.RemoteURL)
	if err != nil {
		return RepoMetadata{}, err
	}

	client := github.NewClient(nil)
	if rep.AccessToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: rep.AccessToken})
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	}

	remote, _, err := client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return RepoMetadata{}, fmt.Errorf("failed to fetch repository %s/%s: %w", owner, name, err)
	}

	return RepoMetadata{
		Name:          remote.GetFullName(),
		DefaultBranch: remote.GetDefaultBranch(),
	}, nil
}

// splitGitHubURL extracts owner and repo name from a web URL
// (https://github.com/owner/repo → owner, repo).
func splitGitHubURL(remoteURL string) (string, string, error) {
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid remote url %q: %w", remoteURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("remote url %q carries no owner/repo path", remoteURL)
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
