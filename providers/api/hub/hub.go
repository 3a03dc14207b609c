/*
Package hub provides a client for release-index JSON APIs.

A release index exposes the published versions of a named project over a
packagist-style JSON route ('{base}/releases/{name}.json').
*/
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// hubHostname - default release index hostname (used as default API).
var hubHostname string = "https://releases.dephub.dev"

// Client defines the release index surface consumed by release sources.
type Client interface {
	Releases(ctx context.Context, name string, opts *ReleasesOptions) (*ReleaseList, *http.Response, error)
}

// IndexClient is used to send API requests to a release index.
type IndexClient struct {
	baseURL    url.URL
	HttpClient *http.Client
}

// NewIndexClient creates and returns a new client.
//
// If a nil URL is provided, the client is configured for the default release index.
func NewIndexClient(httpClient *http.Client, URL *url.URL) (*IndexClient, error) {
	if URL == nil {
		var err error
		if URL, err = url.Parse(hubHostname); err != nil {
			return nil, err
		}
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &IndexClient{baseURL: *URL, HttpClient: httpClient}, nil
}

// ReleaseList represents published releases of one project.
type ReleaseList struct {
	Name     string         `json:"name"`
	Releases []ReleaseEntry `json:"releases"`
}

// ReleaseEntry represents one published release.
type ReleaseEntry struct {
	Version string `json:"version"`
	URL     string `json:"url"`
	Time    string `json:"time"`
}

// ReleasesOptions specifies the optional parameters to Releases() method.
type ReleasesOptions struct {
	// PerPage is used to define the pagination step.
	PerPage int `url:"per_page,omitempty"`
	// Page is used to define page.
	Page int `url:"page,omitempty"`
	// Stable limits the listing to stable releases.
	Stable bool `url:"stable,omitempty"`
}

// Releases method lists published releases for the named project.
func (c IndexClient) Releases(ctx context.Context, name string, opts *ReleasesOptions) (*ReleaseList, *http.Response, error) {
	if name == "" {
		return nil, nil, fmt.Errorf("'name' argument is required for releases request")
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing the options: %w", err)
	}

	route := fmt.Sprintf("%s/releases/%s.json?%s", &c.baseURL, name, v.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", route, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create a request: %w", err)
	}

	var rl ReleaseList
	resp, err := c.do(req, &rl)
	if err != nil {
		return nil, resp, err
	}

	return &rl, resp, nil
}

// do sends the request and decodes the JSON response body into out.
func (c IndexClient) do(req *http.Request, out interface{}) (*http.Response, error) {
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to send the request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp, fmt.Errorf("release index returned with !=200 status code")
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp, fmt.Errorf("unable to read the response body: %w", err)
	}
	if err = json.Unmarshal(body, out); err != nil {
		return resp, fmt.Errorf("unable to parse the response body: %w", err)
	}

	return resp, nil
}
