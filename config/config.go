package config

type Config interface {
	SSOConfig
	APIConfig
	LocaleConfig
}

type SSOConfig interface {
	GetIdPBaseURL() string
	GetSSOClientID() string
	GetSSORedirectURL() string
	GetSignOutRedirectURL() string
	GetOAuth2APIPath() string
	GetLoginPath() string
	GetLogoutPath() string
}

type APIConfig interface {
	GetUserinfoPath() string
	GetIdPAPIPath() string
	GetUsersAPIPath() string
	GetGroupsAPIPath() string
	GetRolesAPIPath() string
	GetOrganizationsAPIPath() string
}

type LocaleConfig interface {
	GetLocale() string
}

type mainConfig struct {
	SSOEnvVars
	APIPaths
	LocaleEnv
}

func New() Config {
	return mainConfig{}
}
