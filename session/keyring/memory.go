package keyring

import (
	"sync"

	apperrors "github.com/tenduke/go-sso-client/internal/errors"
	"github.com/tenduke/go-sso-client/session"
)

var _ session.Keyring = (*Memory)(nil)

// Memory is an in-process keyring. Entries do not survive a restart, which
// matches the "token lives for the app session" behaviour embedding
// applications usually want; tests use it as a fake.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Put(account, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[account] = value
	return nil
}

func (m *Memory) Get(account string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[account]
	if !ok {
		return "", apperrors.Wrapf(apperrors.ErrNotFound, "keyring account %q", account)
	}
	return value, nil
}

func (m *Memory) Delete(account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, account)
	return nil
}

var _ session.Pointer = (*MemoryPointer)(nil)

// MemoryPointer is an in-process current-user-id slot.
type MemoryPointer struct {
	mu sync.RWMutex
	id string
}

func NewMemoryPointer() *MemoryPointer {
	return &MemoryPointer{}
}

func (p *MemoryPointer) Set(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.id = id
	return nil
}

func (p *MemoryPointer) Get() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.id, p.id != ""
}

func (p *MemoryPointer) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.id = ""
	return nil
}
