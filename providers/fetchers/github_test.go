package fetchers

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// configureClient configures client that intercepts ALL requests and forwards them into the specified handler.
func configureClient(t *testing.T, handleFunc http.Handler) *http.Client {
	t.Helper()
	srv := httptest.NewTLSServer(handleFunc)

	// Configuring so that all the request go into our handler.
	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, network, _ string) (net.Conn, error) {
				return net.Dial(network, srv.Listener.Addr().String())
			},
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}

func TestStaticFetcher_TagsMethod(t *testing.T) {
	fetcher := StaticFetcher{TagNames: []string{"v1.0.0", "v1.1.0"}}

	tags, err := fetcher.Tags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(tags, []string{"v1.0.0", "v1.1.0"}) {
		t.Errorf("unexpected tags '%+v'", tags)
	}
}

func TestGitHubFetcher_TagsMethod(t *testing.T) {
	cl := configureClient(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`[
			{"name": "v1.0.0", "commit": {"sha": "2b4a5fccdaf12f98cf8e255affa28cfd7e6a784d"}},
			{"name": "v1.1.0", "commit": {"sha": "5cbfc09fe76804461d5bf2221d8a6e5ceff5c385"}},
			{"name": "list-freeze"}
		]`))
	}))

	fetcher := NewGitHubFetcher(cl, "test", "testing")
	tags, err := fetcher.Tags(context.Background())
	if err != nil {
		t.Error(err)
	}

	expected := []string{"v1.0.0", "v1.1.0", "list-freeze"}
	if !reflect.DeepEqual(tags, expected) {
		t.Errorf("expected tags '%+v', got '%+v'", expected, tags)
	}
}

func TestGitHubFetcher_TagsMethod_HttpNotFound(t *testing.T) {
	cl := configureClient(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
		_, _ = rw.Write([]byte(`{
			"message": "Not Found",
			"documentation_url": "https://docs.github.com/rest/reference/repos#list-repository-tags"
		  }`))
	}))

	fetcher := NewGitHubFetcher(cl, "test", "testing")
	tags, err := fetcher.Tags(context.Background())
	if err == nil {
		t.Error("expected error on missing repository, got none")
	}
	if tags != nil {
		t.Errorf("expected nil tags on error, got '%+v'", tags)
	}
}
