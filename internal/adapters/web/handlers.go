package web

import (
	"context"
	"errors"
	"strings"

	"tweetweb/internal/domain"
	"tweetweb/internal/usecases"
	"tweetweb/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers of the relay API.
type Handlers struct {
	getSession *usecases.GetSessionUseCase
	postTweet  *usecases.PostTweetUseCase
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(getSession *usecases.GetSessionUseCase, postTweet *usecases.PostTweetUseCase) *Handlers {
	return &Handlers{
		getSession: getSession,
		postTweet:  postTweet,
	}
}

type sessionResponse struct {
	LoggedIn   bool   `json:"logged_in"`
	UserID     string `json:"user_id,omitempty"`
	ScreenName string `json:"screen_name,omitempty"`
}

type checkResponse struct {
	Remain    int    `json:"remain"`
	IsValid   bool   `json:"is_valid"`
	IntentURL string `json:"intent_url"`
}

type permalinkResponse struct {
	ScreenName string `json:"screen_name"`
	ID         string `json:"id"`
	URL        string `json:"url"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Remain     *int   `json:"remain,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	IntentURL  string `json:"intent_url,omitempty"`
}

// Session reports whether the configured cookies are logged in, and as whom.
func (h *Handlers) Session(c *fiber.Ctx) error {
	ctx := c.UserContext()

	session, err := h.getSession.Execute(ctx)
	if err != nil {
		log.GlobalErrorCtx(ctx, "get session failed", "error", err)
		return h.renderError(c, err)
	}

	resp := sessionResponse{LoggedIn: session.LoggedIn}
	if session.Account != nil {
		resp.UserID = session.Account.UserID
		resp.ScreenName = session.Account.ScreenName
	}
	return c.JSON(resp)
}

// Check validates the length of the "status" form value without posting.
func (h *Handlers) Check(c *fiber.Ctx) error {
	tweet := strings.Clone(c.FormValue("status"))
	checked := domain.CheckTweet(tweet)

	return c.JSON(checkResponse{
		Remain:    checked.Remain,
		IsValid:   checked.IsValid,
		IntentURL: domain.BuildTweetIntentURL(tweet),
	})
}

// PostTweet posts the "status" form value and relays the upstream body.
func (h *Handlers) PostTweet(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tweet := strings.Clone(c.FormValue("status"))

	body, err := h.postTweet.Execute(ctx, tweet)
	if err != nil {
		log.GlobalErrorCtx(ctx, "post tweet failed", "error", err)
		return h.renderError(c, err)
	}

	log.GlobalInfoCtx(ctx, "tweet posted", "length", domain.TweetLength(tweet))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(body)
}

// Permalink normalizes any twitter.com or x.com tweet URL to its canonical permalink.
func (h *Handlers) Permalink(c *fiber.Ctx) error {
	screenName, tweetID, err := ParseTweetURL(c.Query("url"))
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(permalinkResponse{
		ScreenName: screenName,
		ID:         tweetID,
		URL:        domain.BuildTweetStatusURL(screenName, tweetID),
	})
}

// Intent redirects to the compose dialog pre-filled with the "text" query value.
func (h *Handlers) Intent(c *fiber.Ctx) error {
	return c.Redirect(domain.BuildTweetIntentURL(c.Query("text")), fiber.StatusFound)
}

// Status redirects /:screen_name/status/:id to the tweet on twitter.com.
func (h *Handlers) Status(c *fiber.Ctx) error {
	screenName, tweetID, err := ParseTweetURL("https://twitter.com" + c.Path())
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect(domain.BuildTweetStatusURL(screenName, tweetID), fiber.StatusFound)
}

// renderError maps an error to a status code and JSON body.
func (h *Handlers) renderError(c *fiber.Ctx, err error) error {
	resp := errorResponse{Error: friendlyError(err)}
	status := fiber.StatusBadGateway

	var invalid *domain.InvalidTweetError
	var failed *domain.TweetFailedError

	switch {
	case errors.As(err, &invalid):
		status = fiber.StatusUnprocessableEntity
		resp.Remain = &invalid.Remain
		resp.IntentURL = invalid.IntentURL
	case errors.As(err, &failed):
		resp.StatusCode = failed.StatusCode
		resp.IntentURL = failed.IntentURL
	case errors.Is(err, domain.ErrNotLoggedIn):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidURL):
		status = fiber.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = fiber.StatusGatewayTimeout
	}

	return c.Status(status).JSON(resp)
}

// friendlyError returns a short message safe to show to the user.
func friendlyError(err error) string {
	var invalid *domain.InvalidTweetError
	var failed *domain.TweetFailedError

	switch {
	case errors.As(err, &invalid):
		if invalid.Remain == domain.MaxTweetLength {
			return "The tweet is empty."
		}
		return "The tweet is too long."
	case errors.As(err, &failed):
		return "Twitter rejected the tweet. You can post it from the intent URL instead."
	case errors.Is(err, domain.ErrNotLoggedIn):
		return "Not logged in to Twitter. Check the configured cookies."
	case errors.Is(err, domain.ErrTokenNotFound):
		return "Could not find the authenticity token on the Twitter page."
	case errors.Is(err, domain.ErrNetworkResponse):
		return "Twitter answered with an error page."
	case errors.Is(err, domain.ErrInvalidURL):
		return "That doesn't look like a tweet URL."
	default:
		return "Unable to reach Twitter right now. Please try again in a moment."
	}
}
