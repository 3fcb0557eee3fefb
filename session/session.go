package session

// Session is the authenticated state resolved from a single redirect event.
// Both fields are always resolved together; a Session with only one of them
// never exists in the store.
type Session struct {
	UserID      string // JWT "sub" claim of the logged-in user
	AccessToken string // opaque OAuth2 bearer token
}
