// Package domain contains the core business entities and rules.
package domain

// MaxTweetLength is the weighted character budget of a single tweet.
const MaxTweetLength = 140

// LengthCheck is the result of validating a tweet against MaxTweetLength.
type LengthCheck struct {
	Remain  int  // Characters left; negative when the tweet is too long
	IsValid bool // True if the weighted length is within 1..MaxTweetLength
}

// Account identifies the user a scraped page belongs to.
type Account struct {
	UserID     string
	ScreenName string
}

// Session is the login state read from one page snapshot.
type Session struct {
	LoggedIn bool
	Account  *Account // Nil when the page did not reveal the account
}
