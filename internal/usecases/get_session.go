package usecases

import (
	"context"

	"tweetweb/internal/adapters/scraper"
	"tweetweb/internal/domain"
	"tweetweb/pkg/log"
)

// PageFetcher defines the interface for loading a twitter.com page snapshot.
type PageFetcher interface {
	Fetch(ctx context.Context) (*scraper.Snapshot, error)
}

// GetSessionUseCase reports who, if anyone, the configured cookies log in as.
type GetSessionUseCase struct {
	fetcher PageFetcher
}

// NewGetSessionUseCase creates a new GetSessionUseCase.
func NewGetSessionUseCase(fetcher PageFetcher) *GetSessionUseCase {
	return &GetSessionUseCase{fetcher: fetcher}
}

// Execute fetches the page once and reads the login state from it.
func (uc *GetSessionUseCase) Execute(ctx context.Context) (domain.Session, error) {
	snap, err := uc.fetcher.Fetch(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	session := snap.Session()
	if session.LoggedIn && session.Account == nil {
		log.GlobalWarnCtx(ctx, "logged in but account not found on page")
	}

	return session, nil
}
