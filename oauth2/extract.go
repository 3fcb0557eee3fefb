package oauth2

import "strings"

// ResolveParameter returns the raw value of the named fragment/query
// parameter from rawURL. The value runs from just after the first "name="
// occurrence up to the next '&', or to the end of the string.
//
// The value is deliberately not percent-decoded: access tokens are opaque
// byte strings and decoding would corrupt them. Callers that need decoded
// values must decode the result themselves.
func ResolveParameter(rawURL, name string) (string, bool) {
	needle := name + "="
	start := strings.Index(rawURL, needle)
	if start < 0 {
		return "", false
	}
	value := rawURL[start+len(needle):]
	if end := strings.IndexByte(value, '&'); end >= 0 {
		value = value[:end]
	}
	return value, true
}

// RedirectResult holds the raw parameters extracted from an implicit-flow
// redirect callback URL, e.g.
//
//	tendukeauthapp://oauth/callback#access_token=WC9zkOpA...&token_type=Bearer&expires_in=31536000&id_token=eyJh...
//
// Only AccessToken and IDToken are consumed by the session engine; the rest
// are carried for completeness.
type RedirectResult struct {
	AccessToken string
	IDToken     string
	TokenType   string
	ExpiresIn   string
}

// ParseRedirectResult extracts the token parameters from a redirect URL.
// Absent parameters are left as empty strings.
func ParseRedirectResult(rawURL string) RedirectResult {
	var result RedirectResult
	result.AccessToken, _ = ResolveParameter(rawURL, ParamAccessToken)
	result.IDToken, _ = ResolveParameter(rawURL, ParamIDToken)
	result.TokenType, _ = ResolveParameter(rawURL, ParamTokenType)
	result.ExpiresIn, _ = ResolveParameter(rawURL, ParamExpiresIn)
	return result
}
