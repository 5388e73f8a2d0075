// Package session builds the credentialed HTTP client shared by the page
// fetch and the tweet post.
package session

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NewClient returns an http.Client whose cookie jar is seeded with cookies
// for siteURL. The client sets no timeout; callers bound requests with
// their context.
func NewClient(siteURL string, cookies []*http.Cookie) (*http.Client, error) {
	u, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("parse site url: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	jar.SetCookies(u, cookies)

	return &http.Client{Jar: jar}, nil
}

// ParseCookies parses a Cookie header value such as
// "auth_token=abc; ct0=def". An empty header yields no cookies.
func ParseCookies(header string) ([]*http.Cookie, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, nil
	}
	cookies, err := http.ParseCookie(header)
	if err != nil {
		return nil, fmt.Errorf("parse cookies: %w", err)
	}
	return cookies, nil
}
