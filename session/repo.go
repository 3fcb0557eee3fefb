package session

// Keyring stores secret values keyed by an opaque account id. Values are
// treated as secrets; implementations are expected to resist casual
// inspection (encrypted file, OS keychain, ...).
type Keyring interface {
	// Put stores value under account, replacing any previous value
	Put(account, value string) error

	// Get returns the stored value, or errors.ErrNotFound when absent
	Get(account string) (string, error)

	// Delete removes the entry for account. Deleting an absent entry is
	// not an error.
	Delete(account string) error
}

// Pointer is the plain, non-secret slot holding the current user id. It
// exists so the keyring entry of the active session can be found without
// enumerating accounts.
type Pointer interface {
	// Set records id as the current user
	Set(id string) error

	// Get returns the current user id, reporting false when none is set
	Get() (string, bool)

	// Clear removes the pointer. Clearing an absent pointer is not an error.
	Clear() error
}
