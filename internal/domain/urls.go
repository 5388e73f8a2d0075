package domain

import (
	"net/url"
	"strings"
)

const (
	// TwitterWebURL is the page scraped for session state.
	TwitterWebURL = "https://twitter.com/"

	// TweetAPIURL is the form endpoint that creates a tweet.
	TweetAPIURL = "https://twitter.com/i/tweet/create"

	// TweetWebIntentURL is the compose dialog used as a manual fallback.
	TweetWebIntentURL = "https://twitter.com/intent/tweet"
)

// BuildTweetIntentURL returns the web intent URL that opens the compose
// dialog pre-filled with tweet.
func BuildTweetIntentURL(tweet string) string {
	return TweetWebIntentURL + "?text=" + encodeURIComponent(tweet)
}

// BuildTweetStatusURL returns the permalink of a tweet.
// Neither argument is escaped; both must already be URL-safe.
func BuildTweetStatusURL(screenName, tweetID string) string {
	return "https://twitter.com/" + screenName + "/status/" + tweetID
}

// encodeURIComponent percent-encodes s for use as a query value, with
// spaces as %20 rather than +.
func encodeURIComponent(s string) string {
	// QueryEscape turns a literal '+' into %2B, so any '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
