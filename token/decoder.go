package token

import (
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
	apperrors "github.com/tenduke/go-sso-client/internal/errors"
)

// ErrTokenDecode is returned for any syntactically invalid compact JWT.
// Callers treat a decode failure identically to "claim absent".
var ErrTokenDecode = apperrors.ErrTokenDecode

// Decode splits a compact JWT into its segments and parses the payload into
// a claim set. No signature verification, expiry check, or issuer/audience
// check is performed; tokens arrive over the IdP redirect channel and are
// trusted as-is.
func Decode(rawToken string) (*Claims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, apperrors.Wrapf(ErrTokenDecode, "[token.Decode] empty token")
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, apperrors.Wrapf(ErrTokenDecode, "[token.Decode] %v", err)
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, apperrors.Wrapf(ErrTokenDecode, "[token.Decode] error extracting claims")
	}

	sub, _ := mapClaims["sub"].(string)
	iss, _ := mapClaims["iss"].(string)
	email, _ := mapClaims["email"].(string)

	return &Claims{
		Subject: sub,
		Issuer:  iss,
		Email:   email,
		All:     mapClaims,
	}, nil
}
