package scraper

import (
	"strings"
	"testing"

	"tweetweb/test/fixtures"
)

func parseFixture(t *testing.T, html string) *Snapshot {
	t.Helper()
	snap, err := Parse(strings.NewReader(html), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return snap
}

func TestIsLogin_SingleSignoutButton_ReturnsTrue(t *testing.T) {
	// Arrange
	snap := parseFixture(t, fixtures.GenerateLoggedInPage())

	// Act
	loggedIn := snap.IsLogin()

	// Assert
	if !loggedIn {
		t.Error("expected logged-in page to report login")
	}
}

func TestIsLogin_NoSignoutButton_ReturnsFalse(t *testing.T) {
	snap := parseFixture(t, fixtures.GenerateLoggedOutPage())

	if snap.IsLogin() {
		t.Error("expected logged-out page to report no login")
	}
}

func TestIsLogin_DuplicateSignoutButtons_ReturnsFalse(t *testing.T) {
	snap := parseFixture(t, fixtures.GenerateDuplicateSignoutPage())

	if snap.IsLogin() {
		t.Error("expected ambiguous sign-out match to report no login")
	}
}

func TestAccountInfo_LoggedInPage_ReturnsMatchingAccount(t *testing.T) {
	// Arrange
	snap := parseFixture(t, fixtures.GenerateLoggedInPage())

	// Act
	account, ok := snap.AccountInfo()

	// Assert
	if !ok {
		t.Fatal("expected account to be found")
	}
	if account.UserID != "12345" {
		t.Errorf("UserID: got %v, want 12345", account.UserID)
	}
	if account.ScreenName != "alice" {
		t.Errorf("ScreenName: got %v, want alice", account.ScreenName)
	}
}

func TestAccountInfo_NoUserIDInput_ReturnsNothing(t *testing.T) {
	// Arrange
	snap := parseFixture(t, fixtures.GenerateLoggedOutPage())

	// Act
	account, ok := snap.AccountInfo()

	// Assert
	if ok {
		t.Error("expected no account without current-user-id input")
	}
	if account.UserID != "" || account.ScreenName != "" {
		t.Errorf("got %+v, want zero Account", account)
	}
}

func TestAccountInfo_NoMatchingContainer_ReturnsNothing(t *testing.T) {
	// Arrange - the id input exists but the card has no screen name
	snap := parseFixture(t, fixtures.GenerateMissingScreenNamePage())

	// Act
	account, ok := snap.AccountInfo()

	// Assert
	if ok {
		t.Error("expected no account when the container does not match")
	}
	if account.UserID != "" {
		t.Errorf("UserID: got %q, want empty (no partial result)", account.UserID)
	}
}

func TestAuthenticityToken_ReturnsFirstInput(t *testing.T) {
	// Arrange
	snap := parseFixture(t, fixtures.GenerateLoggedInPage())

	// Act
	token, ok := snap.AuthenticityToken()

	// Assert
	if !ok {
		t.Fatal("expected token to be found")
	}
	if token != "tok-abc123" {
		t.Errorf("got %q, want %q", token, "tok-abc123")
	}
}

func TestAuthenticityToken_Missing_ReturnsFalse(t *testing.T) {
	snap := parseFixture(t, fixtures.GenerateDuplicateSignoutPage())

	if _, ok := snap.AuthenticityToken(); ok {
		t.Error("expected no token on a page without the input")
	}
}

func TestSession_LoggedInPage_IncludesAccount(t *testing.T) {
	snap := parseFixture(t, fixtures.GenerateLoggedInPage())

	session := snap.Session()

	if !session.LoggedIn {
		t.Error("expected LoggedIn to be true")
	}
	if session.Account == nil || session.Account.ScreenName != "alice" {
		t.Errorf("Account: got %+v, want alice", session.Account)
	}
}

func TestSession_LoggedOutPage_HasNoAccount(t *testing.T) {
	snap := parseFixture(t, fixtures.GenerateLoggedOutPage())

	session := snap.Session()

	if session.LoggedIn {
		t.Error("expected LoggedIn to be false")
	}
	if session.Account != nil {
		t.Errorf("Account: got %+v, want nil", session.Account)
	}
}

func TestQueries_DoNotMutateSnapshot(t *testing.T) {
	// Arrange
	snap := parseFixture(t, fixtures.GenerateLoggedInPage())

	// Act - repeated queries must see the same document
	first, _ := snap.AuthenticityToken()
	_ = snap.IsLogin()
	_, _ = snap.AccountInfo()
	second, _ := snap.AuthenticityToken()

	// Assert
	if first != second {
		t.Errorf("token changed between queries: %q then %q", first, second)
	}
}
