// Command sso-demo drives the SSO engine without a real browser surface: it
// prints the login and logout URLs built from the environment configuration,
// replays a sample redirect callback through the navigation pipeline, and
// reports the resulting session state.
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/tenduke/go-sso-client/config"
	"github.com/tenduke/go-sso-client/navigation"
	"github.com/tenduke/go-sso-client/session"
	"github.com/tenduke/go-sso-client/session/keyring"
	"github.com/tenduke/go-sso-client/sso"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running demo: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = fmt.Errorf("panic recovered")
		}
	}()

	_ = godotenv.Load()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	displayAppname("sso demo")

	cfg := config.New()

	store, err := newSessionStore(logger)
	if err != nil {
		return err
	}

	host := &printingHost{}
	controller, err := sso.NewController(sso.Deps{
		Config:     cfg,
		Sessions:   store,
		Classifier: navigation.NewClassifier(navigation.RulesFromConfig(cfg)),
	}, host, sso.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := controller.StartLogin(); err != nil {
		return err
	}

	// Replay the redirect the IdP would issue after a successful login.
	callback := cfg.GetSSORedirectURL() +
		"#access_token=WC9zkOpA57anYEbS6vRmb3eDbac&token_type=Bearer&expires_in=31536000&id_token=" +
		sampleIDToken("8d195856-4b54-4aa5-b0f0-26a1713d2e69")
	controller.OnNavigationEvent(navigation.Event{Kind: navigation.ServerRedirect, URL: callback})

	userID, _ := store.CurrentUserID()
	fmt.Printf("logged in: %v (user %s)\n", controller.IsLoggedIn(), userID)

	if err := controller.StartLogout(); err != nil {
		return err
	}
	controller.OnNavigationEvent(navigation.Event{Kind: navigation.NavigationAttempt, URL: cfg.GetSignOutRedirectURL()})
	fmt.Printf("logged in after sign-out: %v\n", controller.IsLoggedIn())

	return nil
}

func newSessionStore(logger zerolog.Logger) (*session.Store, error) {
	path := os.Getenv("SSO_KEYRING_FILE")
	if path == "" {
		return session.NewStore(keyring.NewMemory(), keyring.NewMemoryPointer(), session.WithLogger(logger))
	}

	ring, err := keyring.NewFile(path, os.Getenv("SSO_KEYRING_PASSPHRASE"))
	if err != nil {
		return nil, err
	}
	return session.NewStore(ring, keyring.NewFilePointer(path+".user"), session.WithLogger(logger))
}

// printingHost stands in for the embedding UI: it prints what a real host
// would load into the browser surface.
type printingHost struct{}

func (printingHost) PresentBrowser(url string) {
	fmt.Printf("present browser: %s\n", url)
}

func (printingHost) DismissBrowser() {
	fmt.Println("dismiss browser")
}

// sampleIDToken builds an unsigned compact JWT with the given subject.
func sampleIDToken(sub string) string {
	header, _ := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	payload, _ := json.Marshal(map[string]string{"sub": sub})
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
