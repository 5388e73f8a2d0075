// Package tweeter posts tweets through the twitter.com web form endpoint.
package tweeter

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tweetweb/internal/domain"
)

const formContentType = "application/x-www-form-urlencoded; charset=utf-8"

// Sender posts tweets as the user whose cookies the client carries.
type Sender struct {
	client *http.Client
	apiURL string
}

// NewSender creates a Sender posting to apiURL (normally domain.TweetAPIURL).
func NewSender(client *http.Client, apiURL string) *Sender {
	return &Sender{
		client: client,
		apiURL: apiURL,
	}
}

// Send validates tweet and posts it with the page's authenticity token.
// It returns the raw response body on success.
//
// An invalid tweet fails with *domain.InvalidTweetError before any request
// is made; a non-2xx response fails with *domain.TweetFailedError. Transport
// errors are returned unchanged.
func (s *Sender) Send(ctx context.Context, tweet, authenticityToken string) (string, error) {
	checked := domain.CheckTweet(tweet)
	intentURL := domain.BuildTweetIntentURL(tweet)

	if !checked.IsValid {
		return "", &domain.InvalidTweetError{
			Tweet:     tweet,
			Remain:    checked.Remain,
			IntentURL: intentURL,
		}
	}

	form := url.Values{}
	form.Set("authenticity_token", authenticityToken)
	form.Set("status", tweet)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", formContentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.TweetFailedError{
			Tweet:      tweet,
			StatusCode: resp.StatusCode,
			IntentURL:  intentURL,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
