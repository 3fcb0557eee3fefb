package navigation

import (
	"strings"

	"github.com/tenduke/go-sso-client/config"
	"github.com/tenduke/go-sso-client/oauth2"
	"github.com/tenduke/go-sso-client/token"
)

// Rules holds the static URL configuration the classifier matches against.
// All matching is exact string or prefix matching with no normalization;
// the signals arriving from a web-rendering surface carry no protocol
// framing, so the string rules are the protocol.
type Rules struct {
	BaseURL            string // bare IdP base URL
	LoginURL           string // BaseURL + login page path
	AuthorizeURL       string // BaseURL + OAuth2 authorization path
	LogoutURL          string // BaseURL + logout path
	SignOutRedirectURL string // exact URL meaning "Sign out" was pressed
	RedirectURIPrefix  string // prefix of the token-carrying callback URI
}

// RulesFromConfig derives the classifier rules from client configuration.
func RulesFromConfig(cfg config.Config) Rules {
	baseURL := cfg.GetIdPBaseURL()
	return Rules{
		BaseURL:            baseURL,
		LoginURL:           baseURL + cfg.GetLoginPath(),
		AuthorizeURL:       baseURL + cfg.GetOAuth2APIPath(),
		LogoutURL:          baseURL + cfg.GetLogoutPath(),
		SignOutRedirectURL: cfg.GetSignOutRedirectURL(),
		RedirectURIPrefix:  cfg.GetSSORedirectURL(),
	}
}

// Classifier is the navigation state machine. It holds no cross-event
// state: every event is classified purely from its own URL and the static
// rules, so event ordering between distinct navigations cannot corrupt
// classification.
type Classifier struct {
	rules Rules
}

func NewClassifier(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify maps one navigation event to a session verdict. Whatever the
// verdict, the navigation itself is always allowed through; verdicts drive
// session side effects only.
func (c *Classifier) Classify(event Event) Verdict {
	switch event.Kind {
	case NavigationAttempt:
		return c.classifyAttempt(event.URL)
	case NavigationResponse:
		return c.classifyResponse(event.URL)
	case ServerRedirect:
		return c.classifyRedirect(event.URL)
	}
	return allowVerdict
}

func (c *Classifier) classifyAttempt(url string) Verdict {
	// Sign out pressed
	if url == c.rules.SignOutRedirectURL {
		return cancelVerdict
	}
	// Continue pressed: the IdP's interstitial bounces back to the bare
	// base URL outside of any login/authorize/logout flow. The match is
	// intentionally narrow and string-exact; do not generalize it.
	if url == c.rules.BaseURL &&
		!strings.HasPrefix(url, c.rules.LoginURL) &&
		!strings.HasPrefix(url, c.rules.AuthorizeURL) &&
		!strings.HasPrefix(url, c.rules.LogoutURL) &&
		strings.HasPrefix(url, c.rules.BaseURL) {
		return cancelVerdict
	}
	return allowVerdict
}

func (c *Classifier) classifyResponse(url string) Verdict {
	if url == c.rules.SignOutRedirectURL {
		return cancelVerdict
	}
	return allowVerdict
}

func (c *Classifier) classifyRedirect(url string) Verdict {
	if !strings.HasPrefix(url, c.rules.RedirectURIPrefix) {
		return ignoreVerdict
	}
	return c.completeSession(url)
}

// completeSession resolves the user id from the redirect's id_token and the
// bearer token from access_token. Both must resolve: a token without an
// identity (or vice versa) cannot be persisted, so partial resolution fails
// closed into a session cancel.
func (c *Classifier) completeSession(rawURL string) Verdict {
	var userID string
	if idToken, ok := oauth2.ResolveParameter(rawURL, oauth2.ParamIDToken); ok {
		if claims, err := token.Decode(idToken); err == nil {
			userID = claims.Subject
		}
	}

	accessToken, _ := oauth2.ResolveParameter(rawURL, oauth2.ParamAccessToken)

	if userID == "" || accessToken == "" {
		return cancelVerdict
	}
	return completeVerdict(userID, accessToken)
}
