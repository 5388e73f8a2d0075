package usecases

import (
	"context"

	"tweetweb/internal/domain"
	"tweetweb/pkg/log"
)

// TweetSender defines the interface for posting a tweet with a page token.
type TweetSender interface {
	Send(ctx context.Context, tweet, authenticityToken string) (string, error)
}

// PostTweetUseCase posts a tweet as the logged-in user.
type PostTweetUseCase struct {
	fetcher PageFetcher
	sender  TweetSender
}

// NewPostTweetUseCase creates a new PostTweetUseCase.
func NewPostTweetUseCase(fetcher PageFetcher, sender TweetSender) *PostTweetUseCase {
	return &PostTweetUseCase{
		fetcher: fetcher,
		sender:  sender,
	}
}

// Execute validates the tweet, takes a fresh authenticity token from the
// page and posts the tweet. It returns the endpoint's raw response body.
func (uc *PostTweetUseCase) Execute(ctx context.Context, tweet string) (string, error) {
	// Reject before touching the network
	if checked := domain.CheckTweet(tweet); !checked.IsValid {
		return "", &domain.InvalidTweetError{
			Tweet:     tweet,
			Remain:    checked.Remain,
			IntentURL: domain.BuildTweetIntentURL(tweet),
		}
	}

	snap, err := uc.fetcher.Fetch(ctx)
	if err != nil {
		return "", err
	}

	if !snap.IsLogin() {
		return "", domain.ErrNotLoggedIn
	}

	token, ok := snap.AuthenticityToken()
	if !ok {
		return "", domain.ErrTokenNotFound
	}

	if account, ok := snap.AccountInfo(); ok {
		ctx = log.WithFields(ctx, "screen_name", account.ScreenName)
	}
	log.GlobalDebugCtx(ctx, "posting tweet", "length", domain.TweetLength(tweet))

	return uc.sender.Send(ctx, tweet, token)
}
