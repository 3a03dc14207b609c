/*
Package relhub provides convinient api over release listings: it turns raw
tag names from git repositories or release indexes into parsed semantic
versions and reasons about them.

Usage:
	source, err := relhub.NewGitSource(nil, "git@github.com:vendor/reponame.git")
	checker := relhub.NewReleaseChecker(source)
	latest, err := checker.Latest(ctx, false)
*/
package relhub

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/dephub/semver-core/providers/api/hub"
	"github.com/dephub/semver-core/providers/fetchers"
	"github.com/dephub/semver-core/semver"
)

// Release represents one published release: the raw tag it was published
// under and its parsed version.
type Release struct {
	Tag     string
	Version semver.Version
}

// ReleaseSource represents abstraction over release listings and provides
// convinient interface to fetch parsed releases from them.
type ReleaseSource interface {
	// Releases returns the project's published releases. Tags that do not
	// carry a semantic version are skipped.
	Releases(ctx context.Context) ([]Release, error)
}

// gitRepoRgx is used to parse repository info from GIT-compatible address string.
//
// Examples matching the regexp:
//     'git@myhostname:vendor/reponame.git'
//     'https://myhostname/vendor/reponame.git' and so on...
// Groups:
//     1: protocol (e.g. 'https://' or 'git@')
//     6: hostname (e.g. 'github.com')
//     8: full repo name (e.g. 'vendor/reponame')
var gitRepoRgx string = `^(((git@)|(git:|ssh:|(http[s]?:\/\/))))([\w\.@\\-~]+)(:|\/)([\w\.@\:\/\-~]+)(\.git)(\/-)?`

// gitRepoRgxCompiled is compiled from gitRepoRgx.
var gitRepoRgxCompiled *regexp.Regexp

func init() {
	gitRepoRgxCompiled = regexp.MustCompile(gitRepoRgx)
}

// NewMemorySource constructs an in-memory ReleaseSource from raw tag names.
func NewMemorySource(tags []string) ReleaseSource {
	return &MemoryReleaseSource{tags: tags}
}

// MemoryReleaseSource serves releases parsed from a fixed tag list.
type MemoryReleaseSource struct {
	tags []string
}

// Releases returns the project's published releases parsed from the fixed tag list.
func (ms MemoryReleaseSource) Releases(ctx context.Context) ([]Release, error) {
	return parseTags(ms.tags), nil
}

// gitRepo represents basic repository information.
type gitRepo struct {
	host, vendor, repo string
}

// supGitSrcs - supported git sources.
var supGitSrcs = []string{"github.com"}

// NewGitSource constructs new Git ReleaseSource implementation.
//
// You can pass specific signed httpClient with any information you want the requests go with
// for example you would like to pass OAuth2/BasicAuth information to github API for increased
// rate limits and so on.
//
// repoAddr is your repository address (e.g. 'git@myhostname:vendor/reponame.git')
func NewGitSource(httpClient *http.Client, repoAddr string) (ReleaseSource, error) {
	repoData, err := parseGitAddr(repoAddr)
	if err != nil {
		return nil, err
	}
	fetcher := fetchers.NewGitHubFetcher(httpClient, repoData.vendor, repoData.repo)
	return &GitReleaseSource{fetcher: fetcher}, nil
}

// GitReleaseSource represents Git ReleaseSource implementation, capable of
// communicating with Git repositories and parsing their tags into releases.
type GitReleaseSource struct {
	fetcher fetchers.TagFetcher
}

// Releases returns the repository's published releases parsed from its tags.
func (gs GitReleaseSource) Releases(ctx context.Context) ([]Release, error) {
	tags, err := gs.fetcher.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to list repository tags: %w", err)
	}
	return parseTags(tags), nil
}

// NewHubSource constructs a ReleaseSource backed by a release-index API.
func NewHubSource(client hub.Client, name string) ReleaseSource {
	return &HubReleaseSource{api: client, name: name}
}

// HubReleaseSource represents release-index ReleaseSource implementation.
type HubReleaseSource struct {
	api  hub.Client
	name string
}

// Releases returns the project's published releases from the release index.
func (hs HubReleaseSource) Releases(ctx context.Context) ([]Release, error) {
	list, _, err := hs.api.Releases(ctx, hs.name, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to list index releases: %w", err)
	}
	tags := make([]string, 0, len(list.Releases))
	for _, entry := range list.Releases {
		tags = append(tags, entry.Version)
	}
	return parseTags(tags), nil
}

// parseTags converts raw tag names into parsed releases, skipping tags that
// do not carry a semantic version. A leading 'v' is tolerated on input; the
// parsed version itself stays canonical.
func parseTags(tags []string) []Release {
	result := make([]Release, 0, len(tags))
	for _, tag := range tags {
		ver, err := semver.Parse(strings.TrimPrefix(tag, "v"))
		if err != nil {
			continue
		}
		result = append(result, Release{Tag: tag, Version: ver})
	}
	return result
}

// parseGitAddr - helper to parse information from git repository address string
func parseGitAddr(addr string) (*gitRepo, error) {
	matches := gitRepoRgxCompiled.FindStringSubmatch(addr)
	if matches == nil || matches[6] == "" || matches[8] == "" {
		return nil, fmt.Errorf("unsupported git repository format %q", addr)
	}
	hostName, repoName := matches[6], matches[8]

	if !gitHostSupported(hostName) {
		return nil, fmt.Errorf("git source %q is not supported", hostName)
	}

	if !strings.Contains(repoName, "/") {
		return nil, fmt.Errorf("unable to parse vendor from name %q", repoName)
	}
	repoNameParts := strings.Split(repoName, "/")

	return &gitRepo{host: hostName, vendor: repoNameParts[0], repo: repoNameParts[1]}, nil
}

// gitHostSupported - helper to check git source support status
func gitHostSupported(host string) bool {
	for _, v := range supGitSrcs {
		if v == host {
			return true
		}
	}
	return false
}
