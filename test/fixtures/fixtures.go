// Package fixtures provides HTML test fixtures for testing the scraper.
package fixtures

// GenerateLoggedInPage creates a twitter.com home page for a logged-in user
// with id 12345 and screen name "alice".
func GenerateLoggedInPage() string {
	return `
<!DOCTYPE html>
<html>
<head><title>Twitter</title></head>
<body>
<input type="hidden" id="current-user-id" value="12345">
<div class="dashboard">
    <div class="ProfileCard" data-user-id="99999" data-screen-name="someone_else"></div>
    <div class="DashboardProfileCard" data-user-id="12345" data-screen-name="alice">
        <a href="/alice">Alice</a>
    </div>
</div>
<form class="tweet-form" action="/i/tweet/create" method="post">
    <input type="hidden" name="authenticity_token" value="tok-abc123">
    <textarea name="status"></textarea>
</form>
<form class="signout-form" action="/logout" method="post">
    <input type="hidden" name="authenticity_token" value="tok-second">
    <button id="signout-button" type="submit">Log out</button>
</form>
</body>
</html>
`
}

// GenerateLoggedOutPage creates the landing page shown without a session.
func GenerateLoggedOutPage() string {
	return `
<!DOCTYPE html>
<html>
<head><title>Twitter. It's what's happening.</title></head>
<body>
<form action="/sessions" method="post">
    <input type="text" name="session[username_or_email]">
    <input type="password" name="session[password]">
    <input type="hidden" name="authenticity_token" value="tok-login">
</form>
</body>
</html>
`
}

// GenerateDuplicateSignoutPage creates a page with two sign-out controls.
func GenerateDuplicateSignoutPage() string {
	return `
<!DOCTYPE html>
<html>
<body>
<button id="signout-button">Log out</button>
<button id="signout-button">Log out</button>
</body>
</html>
`
}

// GenerateMissingScreenNamePage creates a logged-in page whose profile card
// for the current user carries no data-screen-name.
func GenerateMissingScreenNamePage() string {
	return `
<!DOCTYPE html>
<html>
<body>
<input type="hidden" id="current-user-id" value="12345">
<div data-user-id="12345">alice</div>
<div data-user-id="777" data-screen-name="bob"></div>
<button id="signout-button">Log out</button>
</body>
</html>
`
}
