package oauth2

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tenduke/go-sso-client/config"
	apperrors "github.com/tenduke/go-sso-client/internal/errors"
)

// AuthorizationRequest holds the parameters of a single authorization
// request. A request is built per login call and discarded once the URL
// string has been produced; the nonce is fresh on every build.
type AuthorizationRequest struct {
	ClientID      string
	ResponseTypes []ResponseType
	Scopes        []Scope
	RedirectURI   string
	Nonce         string
	Locale        string
}

// Builder constructs IdP authorization URLs from client configuration.
type Builder struct {
	cfg config.Config
}

func NewBuilder(cfg config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// BuildLoginURL returns the full authorization URL for starting a login in
// an embedded browser. Parameter order is fixed: client_id, response_type,
// scopes, redirect_uri, nonce, locale.
func (b *Builder) BuildLoginURL() (string, error) {
	if err := b.validate(); err != nil {
		return "", errors.Wrap(err, "[Builder.BuildLoginURL] validate")
	}

	request := AuthorizationRequest{
		ClientID:      b.cfg.GetSSOClientID(),
		ResponseTypes: DefaultResponseTypes,
		Scopes:        DefaultScopes,
		RedirectURI:   b.cfg.GetSSORedirectURL(),
		Nonce:         GenerateNonce(),
		Locale:        b.cfg.GetLocale(),
	}

	var sb strings.Builder
	sb.WriteString(b.cfg.GetIdPBaseURL())
	sb.WriteString(b.cfg.GetOAuth2APIPath())
	sb.WriteString("?client_id=")
	sb.WriteString(request.ClientID)
	sb.WriteString("&response_type=")
	sb.WriteString(joinResponseTypes(request.ResponseTypes))
	sb.WriteString("&scopes=")
	sb.WriteString(joinScopes(request.Scopes))
	sb.WriteString("&redirect_uri=")
	sb.WriteString(url.QueryEscape(request.RedirectURI))
	sb.WriteString("&nonce=")
	sb.WriteString(request.Nonce)
	sb.WriteString("&locale=")
	sb.WriteString(request.Locale)

	loginURL := sb.String()
	if _, err := url.Parse(loginURL); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrConfiguration, "[Builder.BuildLoginURL] malformed URL %q", loginURL)
	}
	return loginURL, nil
}

// BuildLogoutURL returns the IdP logout page URL.
func (b *Builder) BuildLogoutURL() (string, error) {
	if err := b.validate(); err != nil {
		return "", errors.Wrap(err, "[Builder.BuildLogoutURL] validate")
	}

	logoutURL := b.cfg.GetIdPBaseURL() + b.cfg.GetLogoutPath() + "?locale=" + b.cfg.GetLocale()
	if _, err := url.Parse(logoutURL); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrConfiguration, "[Builder.BuildLogoutURL] malformed URL %q", logoutURL)
	}
	return logoutURL, nil
}

func (b *Builder) validate() error {
	baseURL := b.cfg.GetIdPBaseURL()
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" {
		return apperrors.Wrapf(apperrors.ErrConfiguration, "IdP base URL %q is not an absolute URL", baseURL)
	}
	if b.cfg.GetSSOClientID() == "" {
		return apperrors.Wrapf(apperrors.ErrConfiguration, "SSO client id is empty")
	}
	if b.cfg.GetSSORedirectURL() == "" {
		return apperrors.Wrapf(apperrors.ErrConfiguration, "SSO redirect URL is empty")
	}
	return nil
}

// GenerateNonce returns a fresh unpredictable request nonce: a random
// 128-bit UUID rendered as text.
func GenerateNonce() string {
	return uuid.NewString()
}

// The response type and scope tokens are joined with a literal '+', which is
// a valid sub-delimiter in both query and path components and is what the
// IdP expects; PathEscape keeps it intact while encoding anything unsafe.
func joinResponseTypes(types []ResponseType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, url.PathEscape(string(t)))
	}
	return strings.Join(parts, "+")
}

func joinScopes(scopes []Scope) string {
	parts := make([]string, 0, len(scopes))
	for _, s := range scopes {
		parts = append(parts, url.PathEscape(string(s)))
	}
	return strings.Join(parts, "+")
}
