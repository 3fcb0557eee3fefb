package config

// Static is a Config backed by plain fields, for embedding applications that
// configure the client programmatically rather than through the environment,
// and for tests. Zero-value fields fall back to nothing; callers own filling
// in what they use.
type Static struct {
	IdPBaseURL        string
	SSOClientID       string
	SSORedirectURL    string
	SignOutRedirect   string
	OAuth2APIPath     string
	LoginPath         string
	LogoutPath        string
	UserinfoPath      string
	IdPAPIPath        string
	UsersPath         string
	GroupsPath        string
	RolesPath         string
	OrganizationsPath string
	Locale            string
}

var _ Config = Static{}

func (s Static) GetIdPBaseURL() string     { return s.IdPBaseURL }
func (s Static) GetSSOClientID() string    { return s.SSOClientID }
func (s Static) GetSSORedirectURL() string { return s.SSORedirectURL }

func (s Static) GetSignOutRedirectURL() string {
	if s.SignOutRedirect == "" {
		return s.SSORedirectURL
	}
	return s.SignOutRedirect
}

func (s Static) GetOAuth2APIPath() string {
	if s.OAuth2APIPath == "" {
		return "oauth2/authz/"
	}
	return s.OAuth2APIPath
}

func (s Static) GetLoginPath() string {
	if s.LoginPath == "" {
		return "login"
	}
	return s.LoginPath
}

func (s Static) GetLogoutPath() string {
	if s.LogoutPath == "" {
		return "logout"
	}
	return s.LogoutPath
}

func (s Static) GetUserinfoPath() string {
	if s.UserinfoPath == "" {
		return "userinfo"
	}
	return s.UserinfoPath
}

func (s Static) GetIdPAPIPath() string {
	if s.IdPAPIPath == "" {
		return "api/idp/v1/"
	}
	return s.IdPAPIPath
}

func (s Static) GetUsersAPIPath() string {
	if s.UsersPath == "" {
		return "users"
	}
	return s.UsersPath
}

func (s Static) GetGroupsAPIPath() string {
	if s.GroupsPath == "" {
		return "groups"
	}
	return s.GroupsPath
}

func (s Static) GetRolesAPIPath() string {
	if s.RolesPath == "" {
		return "roles"
	}
	return s.RolesPath
}

func (s Static) GetOrganizationsAPIPath() string {
	if s.OrganizationsPath == "" {
		return "organizations"
	}
	return s.OrganizationsPath
}

func (s Static) GetLocale() string { return s.Locale }
