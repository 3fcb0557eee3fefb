package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tenduke/go-sso-client/config"
)

func TestLocaleEnv_GetLocale(t *testing.T) {
	tests := []struct {
		name     string
		lcAll    string
		lang     string
		expected string
	}{
		{name: "full POSIX locale", lcAll: "en_GB.UTF-8", expected: "en_GB"},
		{name: "language only", lcAll: "fi", expected: "fi"},
		{name: "modifier stripped", lcAll: "fi_FI@euro", expected: "fi_FI"},
		{name: "region upper-cased", lcAll: "en_gb.UTF-8", expected: "en_GB"},
		{name: "C locale is unusable", lcAll: "C", expected: ""},
		{name: "POSIX locale is unusable", lcAll: "POSIX", expected: ""},
		{name: "LANG fallback", lang: "de_DE.UTF-8", expected: "de_DE"},
		{name: "LC_ALL wins over LANG", lcAll: "en_US.UTF-8", lang: "de_DE.UTF-8", expected: "en_US"},
		{name: "nothing set", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tc.lcAll)
			t.Setenv("LANG", tc.lang)
			require.Equal(t, tc.expected, config.LocaleEnv{}.GetLocale())
		})
	}
}

func TestSSOEnvVars_Defaults(t *testing.T) {
	t.Setenv("IDP_BASE_URL", "")
	t.Setenv("SSO_CLIENT_ID", "")
	t.Setenv("SSO_REDIRECT_URL", "")
	t.Setenv("SSO_SIGNOUT_REDIRECT_URL", "")

	vars := config.SSOEnvVars{}
	require.Equal(t, "http://localhost:8080/", vars.GetIdPBaseURL())
	require.Equal(t, "oauth2/authz/", vars.GetOAuth2APIPath())
	require.Equal(t, "login", vars.GetLoginPath())
	require.Equal(t, "logout", vars.GetLogoutPath())
	require.Equal(t, vars.GetSSORedirectURL(), vars.GetSignOutRedirectURL(),
		"sign-out redirect defaults to the SSO redirect URL")
}

func TestSSOEnvVars_Overrides(t *testing.T) {
	t.Setenv("IDP_BASE_URL", "https://idp.example.com/")
	t.Setenv("SSO_CLIENT_ID", "mobile_app")
	t.Setenv("SSO_REDIRECT_URL", "myapp://oauth/callback")
	t.Setenv("SSO_SIGNOUT_REDIRECT_URL", "myapp://oauth/signout")

	vars := config.SSOEnvVars{}
	require.Equal(t, "https://idp.example.com/", vars.GetIdPBaseURL())
	require.Equal(t, "mobile_app", vars.GetSSOClientID())
	require.Equal(t, "myapp://oauth/callback", vars.GetSSORedirectURL())
	require.Equal(t, "myapp://oauth/signout", vars.GetSignOutRedirectURL())
}
