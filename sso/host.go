package sso

// Host is the UI collaborator that owns the embedded browser surface. The
// controller asks it to present a URL in a fresh surface and to dismiss the
// surface when a flow reaches a terminal verdict. The host is expected to
// present one surface at a time and to stop delivering navigation events
// once the surface is dismissed.
type Host interface {
	PresentBrowser(url string)
	DismissBrowser()
}
