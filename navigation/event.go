package navigation

// EventKind identifies which browser-surface hook reported a navigation.
// The three hooks are not mutually exclusive: one physical redirect can fire
// both a ServerRedirect and a NavigationResponse.
type EventKind int

const (
	// NavigationAttempt fires for every navigation the surface is about to
	// perform, including the very first page load.
	NavigationAttempt EventKind = iota

	// NavigationResponse fires once an HTTP response to a navigation has
	// been received; the URL is the final post-redirect-chain URL of that
	// exchange.
	NavigationResponse

	// ServerRedirect fires when the surface receives a same-exchange
	// redirect during an in-flight navigation; the URL is the surface's
	// current address at that moment, which after a successful login is the
	// app's custom-scheme redirect URI carrying the token fragment.
	ServerRedirect
)

func (k EventKind) String() string {
	switch k {
	case NavigationAttempt:
		return "navigation_attempt"
	case NavigationResponse:
		return "navigation_response"
	case ServerRedirect:
		return "server_redirect"
	}
	return "unknown"
}

// Event is one navigation observation reported by the browser surface.
type Event struct {
	Kind EventKind
	URL  string
}
