package oauth2

// ResponseType represents the OAuth 2.0 response type.
// Determines what the authorization endpoint returns in the redirect.
type ResponseType string

const (
	// TokenResponseType asks the IdP to return the access token directly in
	// the redirect URI fragment (implicit flow, no code exchange step).
	TokenResponseType ResponseType = "token"

	// IDTokenResponseType asks the IdP to additionally return an OpenID
	// Connect ID token carrying the authenticated user's identity claims.
	IDTokenResponseType ResponseType = "id_token"
)

// Scope represents an OAuth 2.0 / OpenID Connect scope requested from the
// authorization endpoint.
type Scope string

const (
	ScopeOpenID  Scope = "openid"
	ScopeEmail   Scope = "email"
	ScopeProfile Scope = "profile"
)

// DefaultResponseTypes are the response types requested for the implicit
// flow: a bearer access token plus an identity token.
var DefaultResponseTypes = []ResponseType{TokenResponseType, IDTokenResponseType}

// DefaultScopes are the scopes requested on every login.
var DefaultScopes = []Scope{ScopeOpenID, ScopeEmail, ScopeProfile}

// Names of the parameters the IdP places in the redirect callback URL.
const (
	ParamAccessToken = "access_token"
	ParamIDToken     = "id_token"
	ParamExpiresIn   = "expires_in"
	ParamTokenType   = "token_type"
)
