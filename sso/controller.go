package sso

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tenduke/go-sso-client/config"
	"github.com/tenduke/go-sso-client/navigation"
	"github.com/tenduke/go-sso-client/oauth2"
	"github.com/tenduke/go-sso-client/session"
)

// Deps holds the collaborator dependencies of the Controller.
type Deps struct {
	Config     config.Config
	Sessions   *session.Store
	Classifier *navigation.Classifier
}

// Controller orchestrates the embedded-browser SSO flow: it builds the URL
// to load, feeds every navigation event through the classifier, applies the
// resulting session side effects, and signals the host to dismiss the
// browser surface when a flow terminates.
type Controller struct {
	cfg        config.Config
	urls       *oauth2.Builder
	classifier *navigation.Classifier
	sessions   *session.Store
	host       Host
	log        zerolog.Logger

	mu     sync.Mutex
	active bool // a presented flow is consuming events
}

// ControllerOption defines a function type to modify the Controller instance.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for flow faults.
func WithLogger(log zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.log = log
	}
}

// NewController initializes a Controller with required dependencies.
func NewController(deps Deps, host Host, options ...ControllerOption) (*Controller, error) {
	if deps.Config == nil {
		return nil, errors.New("[NewController] Config is required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("[NewController] Sessions store is required")
	}
	if deps.Classifier == nil {
		return nil, errors.New("[NewController] Classifier is required")
	}
	if host == nil {
		return nil, errors.New("[NewController] host is required")
	}

	controller := &Controller{
		cfg:        deps.Config,
		urls:       oauth2.NewBuilder(deps.Config),
		classifier: deps.Classifier,
		sessions:   deps.Sessions,
		host:       host,
		log:        zerolog.Nop(),
	}

	for _, opt := range options {
		opt(controller)
	}

	return controller, nil
}

// StartLogin builds the login URL and asks the host to present it in a
// fresh browser surface.
func (c *Controller) StartLogin() error {
	loginURL, err := c.urls.BuildLoginURL()
	if err != nil {
		return errors.Wrap(err, "[Controller.StartLogin] BuildLoginURL")
	}
	c.arm()
	c.host.PresentBrowser(loginURL)
	return nil
}

// StartLogout builds the logout URL and asks the host to present it.
func (c *Controller) StartLogout() error {
	logoutURL, err := c.urls.BuildLogoutURL()
	if err != nil {
		return errors.Wrap(err, "[Controller.StartLogout] BuildLogoutURL")
	}
	c.arm()
	c.host.PresentBrowser(logoutURL)
	return nil
}

// OnNavigationEvent classifies one navigation event from the browser
// surface and applies its side effects. The returned action is always
// ActionAllow: verdicts never gate the navigation itself.
//
// CompleteSession is terminal for a flow: once a session has been stored
// (or the flow cancelled) the surface is dismissed and later events for the
// same flow are ignored, so a trailing CancelSession for an
// already-completed redirect cannot destroy the new session.
func (c *Controller) OnNavigationEvent(event navigation.Event) navigation.Action {
	c.mu.Lock()
	active := c.active
	c.mu.Unlock()
	if !active {
		return navigation.ActionAllow
	}

	verdict := c.classifier.Classify(event)
	switch verdict.Action {
	case navigation.ActionCompleteSession:
		if err := c.sessions.Store(verdict.UserID, verdict.AccessToken); err != nil {
			// Fail closed: a session that could not be persisted must not
			// look half logged-in.
			c.log.Err(err).Str("user_id", verdict.UserID).Msg("storing session failed")
			c.sessions.Reset()
		}
		c.finish()
	case navigation.ActionCancelSession:
		c.sessions.Reset()
		c.finish()
	}
	return navigation.ActionAllow
}

// IsLoggedIn reports whether a stored session with a non-empty token exists.
func (c *Controller) IsLoggedIn() bool {
	_, ok := c.sessions.CurrentToken()
	return ok
}

func (c *Controller) arm() {
	c.mu.Lock()
	c.active = true
	c.mu.Unlock()
}

func (c *Controller) finish() {
	c.mu.Lock()
	c.active = false
	c.mu.Unlock()
	c.host.DismissBrowser()
}
