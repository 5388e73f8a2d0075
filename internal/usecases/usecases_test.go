package usecases_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tweetweb/internal/adapters/scraper"
	"tweetweb/internal/domain"
	"tweetweb/internal/usecases"
	"tweetweb/pkg/log"
	"tweetweb/pkg/log/transporters"
	"tweetweb/test/fixtures"
)

// MockFetcher is a mock implementation of PageFetcher.
type MockFetcher struct {
	html  string
	err   error
	calls int
}

func (m *MockFetcher) Fetch(ctx context.Context) (*scraper.Snapshot, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return scraper.Parse(strings.NewReader(m.html), nil)
}

// MockSender is a mock implementation of TweetSender.
type MockSender struct {
	response string
	err      error
	calls    int
	tweet    string
	token    string
}

func (m *MockSender) Send(ctx context.Context, tweet, authenticityToken string) (string, error) {
	m.calls++
	m.tweet = tweet
	m.token = authenticityToken
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// GetSessionUseCase tests

func TestGetSessionUseCase_Execute_LoggedIn(t *testing.T) {
	// Arrange
	uc := usecases.NewGetSessionUseCase(&MockFetcher{html: fixtures.GenerateLoggedInPage()})

	// Act
	session, err := uc.Execute(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.LoggedIn {
		t.Error("expected LoggedIn to be true")
	}
	if session.Account == nil || session.Account.UserID != "12345" {
		t.Errorf("Account: got %+v, want user 12345", session.Account)
	}
}

func TestGetSessionUseCase_Execute_FetchError(t *testing.T) {
	// Arrange
	uc := usecases.NewGetSessionUseCase(&MockFetcher{err: domain.ErrNetworkResponse})

	// Act
	_, err := uc.Execute(context.Background())

	// Assert
	if err != domain.ErrNetworkResponse {
		t.Errorf("expected ErrNetworkResponse, got %v", err)
	}
}

// PostTweetUseCase tests

func TestPostTweetUseCase_Execute_Success(t *testing.T) {
	// Arrange
	fetcher := &MockFetcher{html: fixtures.GenerateLoggedInPage()}
	sender := &MockSender{response: `{"ok":true}`}
	uc := usecases.NewPostTweetUseCase(fetcher, sender)

	// Act
	body, err := uc.Execute(context.Background(), "hello")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != `{"ok":true}` {
		t.Errorf("body: got %v", body)
	}
	if sender.token != "tok-abc123" {
		t.Errorf("token: got %v, want tok-abc123", sender.token)
	}
	if sender.tweet != "hello" {
		t.Errorf("tweet: got %v, want hello", sender.tweet)
	}
}

func TestPostTweetUseCase_Execute_InvalidTweet_NoFetchNoSend(t *testing.T) {
	// Arrange
	fetcher := &MockFetcher{html: fixtures.GenerateLoggedInPage()}
	sender := &MockSender{}
	uc := usecases.NewPostTweetUseCase(fetcher, sender)

	// Act
	_, err := uc.Execute(context.Background(), "")

	// Assert
	var invalid *domain.InvalidTweetError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTweetError, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetch calls: got %v, want 0", fetcher.calls)
	}
	if sender.calls != 0 {
		t.Errorf("send calls: got %v, want 0", sender.calls)
	}
}

func TestPostTweetUseCase_Execute_NotLoggedIn(t *testing.T) {
	// Arrange
	sender := &MockSender{}
	uc := usecases.NewPostTweetUseCase(&MockFetcher{html: fixtures.GenerateLoggedOutPage()}, sender)

	// Act
	_, err := uc.Execute(context.Background(), "hello")

	// Assert
	if err != domain.ErrNotLoggedIn {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
	if sender.calls != 0 {
		t.Errorf("send calls: got %v, want 0", sender.calls)
	}
}

func TestPostTweetUseCase_Execute_TokenMissing(t *testing.T) {
	// Arrange - signed in but the page carries no form
	uc := usecases.NewPostTweetUseCase(&MockFetcher{html: fixtures.GenerateMissingScreenNamePage()}, &MockSender{})

	// Act
	_, err := uc.Execute(context.Background(), "hello")

	// Assert
	if err != domain.ErrTokenNotFound {
		t.Errorf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestPostTweetUseCase_Execute_SenderErrorPassesThrough(t *testing.T) {
	// Arrange
	failed := &domain.TweetFailedError{Tweet: "hello", StatusCode: 403}
	uc := usecases.NewPostTweetUseCase(&MockFetcher{html: fixtures.GenerateLoggedInPage()}, &MockSender{err: failed})

	// Act
	_, err := uc.Execute(context.Background(), "hello")

	// Assert
	if err != failed {
		t.Errorf("expected sender error, got %v", err)
	}
}

func TestPostTweetUseCase_Execute_LogsScreenName(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log.SetDefault(log.New(log.Debug, transporters.NewStdoutWithWriter(&buf)))
	defer log.SetDefault(nil)
	uc := usecases.NewPostTweetUseCase(&MockFetcher{html: fixtures.GenerateLoggedInPage()}, &MockSender{})

	// Act
	uc.Execute(log.WithRequestID(context.Background(), "req-7"), "hello")

	// Assert
	output := buf.String()
	for _, want := range []string{`"msg":"posting tweet"`, `"screen_name":"alice"`, `"request_id":"req-7"`} {
		if !strings.Contains(output, want) {
			t.Errorf("log should contain %s, got: %s", want, output)
		}
	}
}
