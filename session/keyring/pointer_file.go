package keyring

import (
	"os"
	"strings"

	apperrors "github.com/tenduke/go-sso-client/internal/errors"
	"github.com/tenduke/go-sso-client/session"
)

var _ session.Pointer = (*FilePointer)(nil)

// FilePointer persists the current user id as a plain file. The id is not a
// secret; only the token in the keyring is.
type FilePointer struct {
	path string
}

func NewFilePointer(path string) *FilePointer {
	return &FilePointer{path: path}
}

func (p *FilePointer) Set(id string) error {
	if err := os.WriteFile(p.path, []byte(id), 0o600); err != nil {
		return apperrors.Wrapf(apperrors.ErrStorage, "[FilePointer.Set] writing %s: %v", p.path, err)
	}
	return nil
}

func (p *FilePointer) Get() (string, bool) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(string(raw))
	return id, id != ""
}

func (p *FilePointer) Clear() error {
	err := os.Remove(p.path)
	if err != nil && !os.IsNotExist(err) {
		return apperrors.Wrapf(apperrors.ErrStorage, "[FilePointer.Clear] removing %s: %v", p.path, err)
	}
	return nil
}
