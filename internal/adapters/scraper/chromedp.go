package scraper

import (
	"context"
	"net/http"
	"strings"

	"tweetweb/internal/domain"
	"tweetweb/pkg/log"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// BrowserFetcher loads the twitter.com page in headless Chrome, for when
// the page must be rendered by a real browser to show the session state.
// It owns one Chrome process; every Fetch opens a new tab.
type BrowserFetcher struct {
	ctx    context.Context
	cancel context.CancelFunc

	pageURL   string
	cookies   []*http.Cookie
	selectors *Selectors
}

// NewBrowserFetcher starts a local headless Chrome.
// Extra allocator options (e.g. chromedp.ExecPath) are appended to the defaults.
func NewBrowserFetcher(pageURL string, cookies []*http.Cookie, selectors *Selectors, options ...chromedp.ExecAllocatorOption) (*BrowserFetcher, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("no-first-run", true),
	)
	opts = append(opts, options...)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return newBrowserFetcher(allocCtx, cancel, pageURL, cookies, selectors)
}

// NewRemoteBrowserFetcher attaches to an already running Chrome through
// its DevTools websocket URL.
func NewRemoteBrowserFetcher(wsURL, pageURL string, cookies []*http.Cookie, selectors *Selectors) (*BrowserFetcher, error) {
	allocCtx, cancel := chromedp.NewRemoteAllocator(context.Background(), wsURL)
	return newBrowserFetcher(allocCtx, cancel, pageURL, cookies, selectors)
}

func newBrowserFetcher(allocCtx context.Context, cancel context.CancelFunc, pageURL string, cookies []*http.Cookie, selectors *Selectors) (*BrowserFetcher, error) {
	ctx, browserCancel := chromedp.NewContext(allocCtx)

	// Force Chrome startup
	if err := chromedp.Run(ctx); err != nil {
		browserCancel()
		cancel()
		return nil, err
	}

	log.GlobalInfo("browser fetcher chrome started", "page_url", pageURL)

	return &BrowserFetcher{
		ctx: ctx,
		cancel: func() {
			browserCancel()
			cancel()
		},
		pageURL:   pageURL,
		cookies:   cookies,
		selectors: selectors,
	}, nil
}

// Fetch navigates a fresh tab to the page and parses the rendered HTML.
// A non-2xx document status yields domain.ErrNetworkResponse.
func (f *BrowserFetcher) Fetch(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tabCtx, tabCancel := chromedp.NewContext(f.ctx)
	defer tabCancel()

	// Closing the tab is how a caller's cancellation reaches Chrome.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	if err := chromedp.Run(tabCtx, chromedp.ActionFunc(f.setCookies)); err != nil {
		return nil, err
	}

	resp, err := chromedp.RunResponse(tabCtx, chromedp.Navigate(f.pageURL))
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Status < 200 || resp.Status > 299 {
		return nil, domain.ErrNetworkResponse
	}

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, err
	}

	return Parse(strings.NewReader(html), f.selectors)
}

// setCookies installs the session cookies for the page URL in the tab.
func (f *BrowserFetcher) setCookies(ctx context.Context) error {
	for _, c := range f.cookies {
		err := network.SetCookie(c.Name, c.Value).
			WithURL(f.pageURL).
			Do(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close shuts down the browser completely.
func (f *BrowserFetcher) Close() {
	if f.cancel != nil {
		f.cancel()
		log.GlobalInfo("browser fetcher chrome stopped")
	}
}
