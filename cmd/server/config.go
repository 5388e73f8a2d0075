package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tweetweb/pkg/log"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port          string
	LogLevel      log.Level
	Cookies       string
	SelectorsPath string
	Fetcher       string
	ChromePath    string
	ChromeWSURL   string
}

// ErrUnknownFetcher is returned when FETCHER names no known fetcher.
var ErrUnknownFetcher = errors.New("unknown FETCHER")

const (
	fetcherHTTP   = "http"
	fetcherChrome = "chrome"
)

// LoadConfig reads Config from the environment, applying defaults.
// An unknown LOG_LEVEL or FETCHER value is an error.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "3000"),
		LogLevel:      log.Info,
		Cookies:       os.Getenv("TWITTER_COOKIES"),
		SelectorsPath: getEnv("SELECTORS_PATH", "config/selectors.yaml"),
		Fetcher:       strings.ToLower(getEnv("FETCHER", fetcherHTTP)),
		ChromePath:    os.Getenv("CHROME_PATH"),
		ChromeWSURL:   os.Getenv("CHROME_WS_URL"),
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, err
		}
	}

	if cfg.Fetcher != fetcherHTTP && cfg.Fetcher != fetcherChrome {
		return Config{}, fmt.Errorf("%w: %q, want http or chrome", ErrUnknownFetcher, cfg.Fetcher)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
