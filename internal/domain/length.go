package domain

import (
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/unicode/norm"
	"mvdan.cc/xurls/v2"
)

// ShortURLLength is the weight of any URL in a tweet, whatever its real
// length, since Twitter rewrites every link to a t.co short URL.
const ShortURLLength = 23

// urlPattern finds link candidates with or without a scheme. Candidates
// are then filtered by isTweetLink, since Twitter links fewer of them.
var urlPattern = xurls.Relaxed()

// TweetLength returns the weighted length of tweet under the classic
// twitter-text rules: NFC-normalized code points, each link counted as
// ShortURLLength.
func TweetLength(tweet string) int {
	text := norm.NFC.String(tweet)
	length := utf8.RuneCountInString(text)

	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		link := text[loc[0]:loc[1]]
		if !isTweetLink(link, text[:loc[0]]) {
			continue
		}
		length += ShortURLLength - utf8.RuneCountInString(link)
	}

	return length
}

// isTweetLink reports whether Twitter would turn link into a t.co URL.
// before is the text preceding it.
//
// Only http and https are linked, never right after an ASCII letter or digit, '@',
// '$' or '#'. Hosts must end in an ICANN top-level domain; IP literals and
// user info never count. Without a scheme the host must be ASCII and must
// not follow one of "-_./", and a bare "label.cc" country domain needs a
// path to count, t.co aside.
func isTweetLink(link, before string) bool {
	schemeless := !strings.Contains(link, "://")
	if prev, _ := utf8.DecodeLastRuneInString(before); prev != utf8.RuneError {
		if isASCIIAlnum(prev) || strings.ContainsRune("@＠$#＃", prev) {
			return false
		}
		if schemeless && strings.ContainsRune("-_./", prev) {
			return false
		}
	}
	raw := link
	if schemeless {
		raw = "http://" + link
	}

	u, err := url.Parse(raw)
	if err != nil || u.User != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}

	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if host == "" || net.ParseIP(host) != nil {
		return false
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	tld := labels[len(labels)-1]
	if suffix, icann := publicsuffix.PublicSuffix(tld); !icann || suffix != tld {
		return false
	}

	if !schemeless {
		return true
	}
	for i := 0; i < len(host); i++ {
		if host[i] >= utf8.RuneSelf {
			return false
		}
	}
	hasPath := u.Path != "" || u.RawQuery != "" || u.Fragment != ""
	if len(labels) == 2 && len(tld) == 2 && !hasPath && host != "t.co" {
		return false
	}
	return true
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// CheckTweet reports how many characters are left and whether tweet can be
// posted. An empty tweet is never valid.
func CheckTweet(tweet string) LengthCheck {
	check := LengthCheck{
		Remain:  MaxTweetLength,
		IsValid: false,
	}

	length := TweetLength(tweet)
	if length == 0 {
		return check
	}

	check.Remain = MaxTweetLength - length
	check.IsValid = check.Remain >= 0 && check.Remain <= MaxTweetLength

	return check
}
