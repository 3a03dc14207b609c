/*
Package fetchers provides tag listing implementations for in-memory and remote repositories.

Usage:
	fetcher := fetchers.NewGitHubFetcher(nil, "golang", "go")
	tags, err := fetcher.Tags(context.Background())
*/

package fetchers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v33/github"
)

// TagFetcher interface defines fetchers methods.
type TagFetcher interface {
	Tags(ctx context.Context) ([]string, error)
}

// StaticFetcher is used for storing tag names in memory (usefull for debugging/testing or for building custom repositories logic)
type StaticFetcher struct {
	TagNames []string
}

// Tags returns the configured tag names unchanged.
func (sf StaticFetcher) Tags(ctx context.Context) ([]string, error) {
	return sf.TagNames, nil
}

// GitHubFetcher lists tags from the specified repository.
// Owner and Repo represent '{owner}/{repo}' notation.
// httpClient can be used as OAuth2 or BasicAuth http transport.
type GitHubFetcher struct {
	Owner        string
	Repo         string
	githubClient *github.Client
}

// NewGitHubFetcher constructs GitHubFetcher with specified parameters.
// httpClient can be used as OAuth2 or BasicAuth http transport.
func NewGitHubFetcher(httpClient *http.Client, owner, repo string) TagFetcher {
	return &GitHubFetcher{
		Owner:        owner,
		Repo:         repo,
		githubClient: github.NewClient(httpClient),
	}
}

// Tags lists every tag name from the configured repository, following pagination.
func (p GitHubFetcher) Tags(ctx context.Context) ([]string, error) {
	opts := github.ListOptions{PerPage: 100}

	var names []string
	for {
		tags, resp, err := p.githubClient.Repositories.ListTags(ctx, p.Owner, p.Repo, &opts)
		if err != nil {
			return nil, fmt.Errorf("unable to load tags from github: %w", err)
		}
		for _, tag := range tags {
			names = append(names, tag.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return names, nil
}
