package restapi

// UserInfo is the response of the IdP's /userinfo endpoint. The "sub"
// element carries the logged-in user's UUID.
type UserInfo struct {
	Sub        string `json:"sub"`
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
	Email      string `json:"email,omitempty"`
}

// User is an IdP user account entity.
type User struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type,omitempty"`
	GivenName   string `json:"givenName,omitempty"`
	FamilyName  string `json:"familyName,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	ValidFrom   string `json:"validFrom,omitempty"`
	ValidUntil  string `json:"validUntil,omitempty"`
}

// Group is an IdP user group entity.
type Group struct {
	ID             string   `json:"id,omitempty"`
	Type           string   `json:"type,omitempty"`
	Name           string   `json:"name,omitempty"`
	Description    string   `json:"description,omitempty"`
	OrganizationID string   `json:"ref_Organization_id,omitempty"`
	UserIDs        []string `json:"userIds,omitempty"`
}

// Role is an IdP role entity.
type Role struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Definition  string `json:"definition,omitempty"`
}

// Organization is an IdP organization entity.
type Organization struct {
	ID          string  `json:"id,omitempty"`
	Type        string  `json:"type,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Founded     string  `json:"founded,omitempty"`
	Groups      []Group `json:"groups,omitempty"`
}
