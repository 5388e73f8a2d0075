package web

import (
	"regexp"

	"tweetweb/internal/domain"
)

// tweetURLRegex matches Twitter/X URLs and extracts screen name and tweet ID.
// Accepts twitter.com, x.com, mobile.twitter.com and www. variants.
// Query parameters and fragments are ignored.
var tweetURLRegex = regexp.MustCompile(
	`^https?://(?:www\.|mobile\.)?(?:twitter\.com|x\.com)/(\w{1,15})/status(?:es)?/(\d+)`,
)

// ParseTweetURL extracts the screen name and tweet ID from a Twitter/X URL.
// Returns domain.ErrInvalidURL if the URL format is invalid.
func ParseTweetURL(url string) (screenName string, tweetID string, err error) {
	matches := tweetURLRegex.FindStringSubmatch(url)
	if len(matches) < 3 {
		return "", "", domain.ErrInvalidURL
	}
	return matches[1], matches[2], nil
}
