package config

// IdP entity REST API paths, relative to the IdP base URL. These serve the
// REST collaborator that consumes the session's bearer token; the SSO engine
// itself never calls them.
const (
	userinfoAPIPath      = "userinfo"
	idpBaseAPIPath       = "api/idp/"
	idpAPIVersionPath    = "v1/"
	usersAPIPath         = "users"
	groupsAPIPath        = "groups"
	rolesAPIPath         = "roles"
	organizationsAPIPath = "organizations"
)

type APIPaths struct{}

var _ APIConfig = APIPaths{}

func (APIPaths) GetUserinfoPath() string {
	return userinfoAPIPath
}

func (APIPaths) GetIdPAPIPath() string {
	return idpBaseAPIPath + idpAPIVersionPath
}

func (APIPaths) GetUsersAPIPath() string {
	return usersAPIPath
}

func (APIPaths) GetGroupsAPIPath() string {
	return groupsAPIPath
}

func (APIPaths) GetRolesAPIPath() string {
	return rolesAPIPath
}

func (APIPaths) GetOrganizationsAPIPath() string {
	return organizationsAPIPath
}
