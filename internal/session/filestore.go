package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// FileStore keeps session state under a directory, one file per concern.
// Files are owner-only since the token grants account access.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create state dir")
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the state directory path.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) tokenPath() string {
	return filepath.Join(f.dir, "token")
}

// LoadToken returns the persisted token, or "" when none is stored.
func (f *FileStore) LoadToken() (string, error) {
	data, err := os.ReadFile(f.tokenPath())
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read token file")
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveToken writes the token with owner-only permissions.
func (f *FileStore) SaveToken(token string) error {
	return errors.Wrap(os.WriteFile(f.tokenPath(), []byte(token), 0o600), "write token file")
}

// ClearToken removes the token file. Missing files are fine.
func (f *FileStore) ClearToken() error {
	err := os.Remove(f.tokenPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove token file")
	}
	return nil
}
