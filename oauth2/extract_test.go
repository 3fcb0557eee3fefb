package oauth2_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tenduke/go-sso-client/oauth2"
)

func TestResolveParameter(t *testing.T) {
	t.Run("value followed by another parameter", func(t *testing.T) {
		value, ok := oauth2.ResolveParameter("app://cb#a=1&b=2", "a")
		require.True(t, ok)
		require.Equal(t, "1", value)
	})

	t.Run("value at end of string", func(t *testing.T) {
		value, ok := oauth2.ResolveParameter("app://cb#a=1", "a")
		require.True(t, ok)
		require.Equal(t, "1", value)
	})

	t.Run("absent parameter", func(t *testing.T) {
		_, ok := oauth2.ResolveParameter("app://cb#b=2", "a")
		require.False(t, ok)
	})

	t.Run("works for query parameters too", func(t *testing.T) {
		value, ok := oauth2.ResolveParameter("app://cb?a=1&b=2", "b")
		require.True(t, ok)
		require.Equal(t, "2", value)
	})

	t.Run("value is not percent-decoded", func(t *testing.T) {
		value, ok := oauth2.ResolveParameter("app://cb#access_token=WC9z%2FkOpA&b=2", "access_token")
		require.True(t, ok)
		require.Equal(t, "WC9z%2FkOpA", value)
	})

	t.Run("matches the first literal occurrence of name=", func(t *testing.T) {
		// "token=" first occurs inside "id_token="; the raw substring scan
		// deliberately reproduces this.
		value, ok := oauth2.ResolveParameter("app://cb#id_token=abc&token=xyz", "token")
		require.True(t, ok)
		require.Equal(t, "abc", value)
	})
}

func TestParseRedirectResult(t *testing.T) {
	callback := "tendukeauthapp://oauth/callback#access_token=WC9zkOpA57anYEbS6vRmb3eDbac&token_type=Bearer&expires_in=31536000&id_token=eyJh.eyJz.sig"

	result := oauth2.ParseRedirectResult(callback)
	require.Equal(t, "WC9zkOpA57anYEbS6vRmb3eDbac", result.AccessToken)
	require.Equal(t, "Bearer", result.TokenType)
	require.Equal(t, "31536000", result.ExpiresIn)
	require.Equal(t, "eyJh.eyJz.sig", result.IDToken)
}
