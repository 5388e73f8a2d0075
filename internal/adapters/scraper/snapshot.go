package scraper

import (
	"io"

	"tweetweb/internal/domain"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Snapshot is one parse of the twitter.com page.
// Queries are read-only and never fetch again.
type Snapshot struct {
	root      *html.Node
	selectors *Selectors
}

// Parse reads an HTML document into a Snapshot.
// A nil selectors uses DefaultSelectors; selectors that do not compile
// fail with domain.ErrInvalidSelector before the document is read.
func Parse(r io.Reader, selectors *Selectors) (*Snapshot, error) {
	if selectors == nil {
		selectors = DefaultSelectors()
	}
	if err := selectors.Validate(); err != nil {
		return nil, err
	}
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Snapshot{root: root, selectors: selectors}, nil
}

// IsLogin reports whether the page shows exactly one sign-out control.
// No match and several matches both read as logged out.
func (s *Snapshot) IsLogin() bool {
	return len(s.queryAll(s.selectors.SignoutButton)) == 1
}

// AccountInfo returns the logged-in user's id and screen name.
// It returns false unless both are found.
func (s *Snapshot) AccountInfo() (domain.Account, bool) {
	idInput := s.queryOne(s.selectors.CurrentUserID)
	if idInput == nil {
		return domain.Account{}, false
	}
	userID := htmlquery.SelectAttr(idInput, "value")

	for _, n := range s.queryAll(s.selectors.AccountContainer) {
		if id, ok := attr(n, "data-user-id"); !ok || id != userID {
			continue
		}
		screenName, ok := attr(n, "data-screen-name")
		if !ok {
			continue
		}
		return domain.Account{UserID: userID, ScreenName: screenName}, true
	}

	return domain.Account{}, false
}

// AuthenticityToken returns the value of the first authenticity_token input.
func (s *Snapshot) AuthenticityToken() (string, bool) {
	input := s.queryOne(s.selectors.AuthenticityToken)
	if input == nil {
		return "", false
	}
	return htmlquery.SelectAttr(input, "value"), true
}

// Session summarizes the login state of the page.
func (s *Snapshot) Session() domain.Session {
	session := domain.Session{LoggedIn: s.IsLogin()}
	if account, ok := s.AccountInfo(); ok {
		session.Account = &account
	}
	return session
}

// queryAll and queryOne ignore compile errors; Parse has validated the selectors.
func (s *Snapshot) queryAll(expr string) []*html.Node {
	nodes, err := htmlquery.QueryAll(s.root, expr)
	if err != nil {
		return nil
	}
	return nodes
}

func (s *Snapshot) queryOne(expr string) *html.Node {
	n, err := htmlquery.Query(s.root, expr)
	if err != nil {
		return nil
	}
	return n
}

// attr distinguishes a missing attribute from an empty one.
func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
