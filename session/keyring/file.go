package keyring

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"os"
	"sync"

	apperrors "github.com/tenduke/go-sso-client/internal/errors"
	"github.com/tenduke/go-sso-client/session"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the sealing key from the passphrase.
const (
	argonIterations  = 1
	argonMemory      = 64 * 1024
	argonParallelism = 4
	argonKeyLength   = 32
	saltLength       = 16
)

var _ session.Keyring = (*File)(nil)

// File is a keyring persisted as a single encrypted file. The whole entry
// map is sealed with AES-256-GCM under an argon2id-derived key, so tokens at
// rest are unreadable without the passphrase.
type File struct {
	path string
	key  []byte
	salt []byte

	mu      sync.Mutex
	entries map[string]string
}

// envelope is the on-disk format: the KDF salt in the clear, the sealed
// entry map (nonce-prefixed AES-GCM ciphertext) as the payload.
type envelope struct {
	Salt   []byte `json:"salt"`
	Sealed []byte `json:"sealed"`
}

// NewFile opens (or creates) the encrypted keyring at path. An existing file
// is decrypted with the given passphrase; a wrong passphrase fails here, not
// on first use.
func NewFile(path, passphrase string) (*File, error) {
	f := &File{
		path:    path,
		entries: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		f.salt = make([]byte, saltLength)
		if _, err := rand.Read(f.salt); err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrStorage, "[keyring.NewFile] generating salt: %v", err)
		}
		f.key = deriveKey(passphrase, f.salt)
		return f, nil
	}
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "[keyring.NewFile] reading %s: %v", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "[keyring.NewFile] parsing %s: %v", path, err)
	}
	f.salt = env.Salt
	f.key = deriveKey(passphrase, f.salt)

	plaintext, err := open(f.key, env.Sealed)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "[keyring.NewFile] decrypting %s: %v", path, err)
	}
	if err := json.Unmarshal(plaintext, &f.entries); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "[keyring.NewFile] decoding entries: %v", err)
	}
	return f, nil
}

func (f *File) Put(account, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, hadPrevious := f.entries[account]
	f.entries[account] = value
	if err := f.persist(); err != nil {
		if hadPrevious {
			f.entries[account] = previous
		} else {
			delete(f.entries, account)
		}
		return err
	}
	return nil
}

func (f *File) Get(account string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.entries[account]
	if !ok {
		return "", apperrors.Wrapf(apperrors.ErrNotFound, "keyring account %q", account)
	}
	return value, nil
}

func (f *File) Delete(account string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, ok := f.entries[account]
	if !ok {
		return nil
	}
	delete(f.entries, account)
	if err := f.persist(); err != nil {
		f.entries[account] = previous
		return err
	}
	return nil
}

func (f *File) persist() error {
	plaintext, err := json.Marshal(f.entries)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "[keyring.File] encoding entries: %v", err)
	}
	sealed, err := seal(f.key, plaintext)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "[keyring.File] sealing entries: %v", err)
	}
	raw, err := json.Marshal(envelope{Salt: f.salt, Sealed: sealed})
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "[keyring.File] encoding envelope: %v", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "[keyring.File] writing %s: %v", f.path, err)
	}
	return nil
}

func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)
}

func seal(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(key, sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, apperrors.Wrapf(apperrors.ErrStorage, "sealed payload too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
