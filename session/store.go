package session

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	apperrors "github.com/tenduke/go-sso-client/internal/errors"
	"golang.org/x/oauth2"
)

var (
	ErrStorage   = apperrors.ErrStorage
	ErrNoSession = apperrors.ErrNoSession
)

// Store persists the authenticated session: the access token goes into a
// secure keyring under key = user id, and the user id itself into a plain
// pointer slot. Session-mutating calls are serialized by a single mutex so
// the pointer and the keyring entry change together.
type Store struct {
	keyring Keyring
	pointer Pointer
	log     zerolog.Logger

	mu sync.Mutex
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithLogger sets the logger used to report storage faults.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore initializes a session Store over the given keyring and pointer
// slot. Optional configuration can be provided via options.
func NewStore(keyring Keyring, pointer Pointer, options ...StoreOption) (*Store, error) {
	if keyring == nil {
		return nil, errors.New("[NewStore] keyring is required")
	}
	if pointer == nil {
		return nil, errors.New("[NewStore] pointer is required")
	}

	store := &Store{
		keyring: keyring,
		pointer: pointer,
		log:     zerolog.Nop(),
	}

	for _, opt := range options {
		opt(store)
	}

	return store, nil
}

// Store persists a new session, overwriting any previous one. The keyring
// entry is written before the pointer so a secure-write failure never leaves
// a pointer to a missing entry; if the pointer write fails the keyring entry
// is removed again so no orphan secret remains.
func (s *Store) Store(userID, accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID == "" {
		return apperrors.Wrapf(ErrStorage, "[Store.Store] empty user id")
	}

	if err := s.keyring.Put(userID, accessToken); err != nil {
		return errors.Wrap(err, "[Store.Store] keyring.Put")
	}
	if err := s.pointer.Set(userID); err != nil {
		if deleteErr := s.keyring.Delete(userID); deleteErr != nil {
			s.log.Err(deleteErr).Str("user_id", userID).Msg("removing keyring entry after pointer failure failed")
		}
		return errors.Wrap(err, "[Store.Store] pointer.Set")
	}
	return nil
}

// CurrentToken returns the access token of the active session. Reports
// false when no user is pointed at, when the keyring has no entry for the
// pointed-at user, or when the stored value is the empty string (the
// "signed out" sentinel, distinct from "never signed in").
func (s *Store) CurrentToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.pointer.Get()
	if !ok {
		return "", false
	}
	token, err := s.keyring.Get(id)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// CurrentUserID returns the pointer slot verbatim, even if the keyring holds
// no entry for that id. Callers tolerate the inconsistency; it can occur
// after a partially failed reset.
func (s *Store) CurrentUserID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer.Get()
}

// Current returns a copy of the active session, or false when either half
// is missing.
func (s *Store) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.pointer.Get()
	if !ok {
		return Session{}, false
	}
	token, err := s.keyring.Get(id)
	if err != nil || token == "" {
		return Session{}, false
	}
	return Session{UserID: id, AccessToken: token}, true
}

// Reset clears the active session: the keyring entry for the pointed-at
// user is deleted, then the pointer itself. A keyring deletion failure is
// reported to the fault log and leaves the pointer in place; the caller
// observes a dangling pointer rather than a silently half-cleared session.
// Reset is idempotent: with no pointer set it does nothing.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.pointer.Get()
	if !ok {
		return
	}
	if err := s.keyring.Delete(id); err != nil {
		s.log.Err(err).Str("user_id", id).Msg("resetting session failed")
		return
	}
	if err := s.pointer.Clear(); err != nil {
		s.log.Err(err).Str("user_id", id).Msg("clearing session pointer failed")
	}
}

// Token implements golang.org/x/oauth2.TokenSource, letting REST
// collaborators attach "Authorization: Bearer" headers via oauth2.Transport
// without seeing anything but the current token.
func (s *Store) Token() (*oauth2.Token, error) {
	token, ok := s.CurrentToken()
	if !ok {
		return nil, apperrors.Wrapf(ErrNoSession, "[Store.Token] no current token")
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

var _ oauth2.TokenSource = (*Store)(nil)
