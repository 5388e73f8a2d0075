package scraper

import (
	"context"
	"net/http"

	"tweetweb/internal/domain"
)

// HTTPFetcher downloads the twitter.com page with the session's cookies.
type HTTPFetcher struct {
	client    *http.Client
	pageURL   string
	selectors *Selectors
}

// NewHTTPFetcher creates a fetcher for pageURL. The client carries the
// credentials (see session.NewClient).
func NewHTTPFetcher(client *http.Client, pageURL string, selectors *Selectors) *HTTPFetcher {
	return &HTTPFetcher{
		client:    client,
		pageURL:   pageURL,
		selectors: selectors,
	}
}

// Fetch GETs the page and parses it into a Snapshot.
// A non-2xx status yields domain.ErrNetworkResponse; transport errors are
// returned as they are.
func (f *HTTPFetcher) Fetch(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.ErrNetworkResponse
	}

	return Parse(resp.Body, f.selectors)
}
