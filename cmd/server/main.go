package main

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/chromedp/chromedp"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"tweetweb/internal/adapters/scraper"
	"tweetweb/internal/adapters/session"
	"tweetweb/internal/adapters/tweeter"
	"tweetweb/internal/adapters/web"
	"tweetweb/internal/domain"
	"tweetweb/internal/usecases"
	"tweetweb/pkg/log"
	"tweetweb/pkg/log/transporters"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	logger := log.New(log.Info, transporters.NewStdout())
	log.SetDefault(logger)
	defer logger.Close()

	cfg, err := LoadConfig()
	if err != nil {
		fatal("invalid configuration", err)
	}
	logger.SetLevel(cfg.LogLevel)
	log.SetDefault(logger.With("service", "tweetweb", "fetcher", cfg.Fetcher))

	cookies, err := session.ParseCookies(cfg.Cookies)
	if err != nil {
		fatal("invalid TWITTER_COOKIES", err)
	}
	if len(cookies) == 0 {
		log.GlobalWarn("TWITTER_COOKIES is empty, every request will read as logged out")
	}

	client, err := session.NewClient(domain.TwitterWebURL, cookies)
	if err != nil {
		fatal("failed to create http client", err)
	}

	selectors, err := loadSelectors(cfg.SelectorsPath)
	if err != nil {
		fatal("failed to load selectors", err)
	}

	fetcher, closeFetcher, err := newFetcher(cfg, client, cookies, selectors)
	if err != nil {
		fatal("failed to start fetcher", err)
	}
	defer closeFetcher()

	sender := tweeter.NewSender(client, domain.TweetAPIURL)

	handlers := web.NewHandlers(
		usecases.NewGetSessionUseCase(fetcher),
		usecases.NewPostTweetUseCase(fetcher, sender),
	)

	app := fiber.New(fiber.Config{
		AppName:               "tweetweb",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.GlobalInfo("shutting down")
		if err := app.Shutdown(); err != nil {
			log.GlobalError("shutdown failed", "error", err)
		}
	}()

	log.GlobalInfo("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.GlobalError("server stopped", "error", err)
	}
}

// loadSelectors reads the selector file, falling back to the built-in
// expressions when it does not exist.
func loadSelectors(path string) (*scraper.Selectors, error) {
	selectors, err := scraper.LoadSelectors(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.GlobalWarn("selectors file not found, using defaults", "path", path)
		return scraper.DefaultSelectors(), nil
	}
	return selectors, err
}

// newFetcher builds the page fetcher selected by cfg.Fetcher.
func newFetcher(cfg Config, client *http.Client, cookies []*http.Cookie, selectors *scraper.Selectors) (usecases.PageFetcher, func(), error) {
	if cfg.Fetcher != fetcherChrome {
		return scraper.NewHTTPFetcher(client, domain.TwitterWebURL, selectors), func() {}, nil
	}

	var (
		browser *scraper.BrowserFetcher
		err     error
	)
	if cfg.ChromeWSURL != "" {
		browser, err = scraper.NewRemoteBrowserFetcher(cfg.ChromeWSURL, domain.TwitterWebURL, cookies, selectors)
	} else {
		var options []chromedp.ExecAllocatorOption
		if cfg.ChromePath != "" {
			options = append(options, chromedp.ExecPath(cfg.ChromePath))
		}
		browser, err = scraper.NewBrowserFetcher(domain.TwitterWebURL, cookies, selectors, options...)
	}
	if err != nil {
		return nil, nil, err
	}
	return browser, browser.Close, nil
}

// fatal logs at FATAL level and exits.
func fatal(msg string, err error) {
	log.Default().Fatal(msg, "error", err)
	os.Exit(1)
}
