package token

import jwtlib "github.com/golang-jwt/jwt/v5"

// Claims is the decoded payload of a compact JWT. Only the claims the SSO
// engine consumes are lifted into fields; everything else stays available
// in All.
type Claims struct {
	Subject string // "sub" - the authenticated principal's unique ID
	Issuer  string // "iss"
	Email   string // "email"

	All jwtlib.MapClaims
}
