package scraper

import (
	"fmt"
	"os"

	"tweetweb/internal/domain"

	"github.com/antchfx/xpath"
	"gopkg.in/yaml.v3"
)

// Selectors holds the XPath expressions used to query a Snapshot.
type Selectors struct {
	SignoutButton     string
	CurrentUserID     string
	AccountContainer  string
	AuthenticityToken string
}

// rawConfig represents the YAML structure.
type rawConfig struct {
	Session struct {
		SignoutButton string `yaml:"signout_button"`
		CurrentUserID string `yaml:"current_user_id"`
	} `yaml:"session"`
	Account struct {
		Container string `yaml:"container"`
	} `yaml:"account"`
	Form struct {
		AuthenticityToken string `yaml:"authenticity_token"`
	} `yaml:"form"`
}

// DefaultSelectors returns the selectors matching the twitter.com web page.
func DefaultSelectors() *Selectors {
	return &Selectors{
		SignoutButton:     `//*[@id="signout-button"]`,
		CurrentUserID:     `//input[@id="current-user-id"]`,
		AccountContainer:  `//div[@data-user-id][@data-screen-name]`,
		AuthenticityToken: `.//input[@name="authenticity_token"]`,
	}
}

// LoadSelectors loads selectors from a YAML file.
// Keys missing from the file keep their default expression.
func LoadSelectors(filePath string) (*Selectors, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	sel := DefaultSelectors()
	override(&sel.SignoutButton, raw.Session.SignoutButton)
	override(&sel.CurrentUserID, raw.Session.CurrentUserID)
	override(&sel.AccountContainer, raw.Account.Container)
	override(&sel.AuthenticityToken, raw.Form.AuthenticityToken)

	if err := sel.Validate(); err != nil {
		return nil, err
	}

	return sel, nil
}

// Validate checks that every expression compiles. The first bad one, in
// declaration order, is named in the error.
func (s *Selectors) Validate() error {
	for _, sel := range []struct{ name, expr string }{
		{"signout_button", s.SignoutButton},
		{"current_user_id", s.CurrentUserID},
		{"account.container", s.AccountContainer},
		{"authenticity_token", s.AuthenticityToken},
	} {
		if _, err := xpath.Compile(sel.expr); err != nil {
			return fmt.Errorf("%w: %s %q: %v", domain.ErrInvalidSelector, sel.name, sel.expr, err)
		}
	}
	return nil
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
