package config

import "os"

const (
	idpBaseURLVar       = "IDP_BASE_URL"
	ssoClientIDVar      = "SSO_CLIENT_ID"
	ssoRedirectURLVar   = "SSO_REDIRECT_URL"
	signOutRedirectVar  = "SSO_SIGNOUT_REDIRECT_URL"
	ssoOAuth2APIPathVar = "SSO_OAUTH2_API_PATH"
	ssoLogoutAPIPathVar = "SSO_LOGOUT_API_PATH"
)

type SSOEnvVars struct{}

var _ SSOConfig = SSOEnvVars{}

func (SSOEnvVars) GetIdPBaseURL() string {
	return GetEnv(idpBaseURLVar, "http://localhost:8080/")
}

func (SSOEnvVars) GetSSOClientID() string {
	return GetEnv(ssoClientIDVar, "go_test")
}

func (SSOEnvVars) GetSSORedirectURL() string {
	return GetEnv(ssoRedirectURLVar, "tendukeauthapp://oauth/callback")
}

// GetSignOutRedirectURL returns the URL whose exact appearance in the browser
// surface means the user pressed "Sign out". Defaults to the SSO redirect URL,
// which is how the IdP is configured in practice.
func (s SSOEnvVars) GetSignOutRedirectURL() string {
	return GetEnv(signOutRedirectVar, s.GetSSORedirectURL())
}

func (SSOEnvVars) GetOAuth2APIPath() string {
	return GetEnv(ssoOAuth2APIPathVar, "oauth2/authz/")
}

func (SSOEnvVars) GetLoginPath() string {
	return "login"
}

func (SSOEnvVars) GetLogoutPath() string {
	return GetEnv(ssoLogoutAPIPathVar, "logout")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
