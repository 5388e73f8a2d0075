package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkResponse is returned when the page fetch gets a non-2xx status.
	ErrNetworkResponse = errors.New("network response was not ok")

	// ErrNotLoggedIn is returned when the fetched page has no single sign-out control.
	ErrNotLoggedIn = errors.New("not logged in to twitter")

	// ErrTokenNotFound is returned when the page carries no authenticity_token input.
	ErrTokenNotFound = errors.New("authenticity token not found")

	// ErrInvalidURL is returned when a tweet URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid tweet URL format")

	// ErrInvalidSelector is returned when a configured XPath selector does not compile.
	ErrInvalidSelector = errors.New("invalid selector")
)

// InvalidTweetError is returned before any request is made when the tweet
// is empty or longer than MaxTweetLength.
type InvalidTweetError struct {
	Tweet     string
	Remain    int
	IntentURL string // Manual fallback: the compose dialog pre-filled with Tweet
}

func (e *InvalidTweetError) Error() string {
	if e.Remain == MaxTweetLength {
		return "invalid tweet: empty"
	}
	return fmt.Sprintf("invalid tweet: %d characters over the limit", -e.Remain)
}

// TweetFailedError is returned when the tweet endpoint answers with a non-2xx status.
type TweetFailedError struct {
	Tweet      string
	StatusCode int
	IntentURL  string
}

func (e *TweetFailedError) Error() string {
	return fmt.Sprintf("tweet failed with status %d", e.StatusCode)
}
