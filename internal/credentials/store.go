// Package credentials keeps the marksctl session token in a local JSON file.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfrund/marksweb/internal/domain"
	"github.com/spf13/afero"
)

const (
	// EnvToken overrides the stored token when set.
	EnvToken = "MARKS_TOKEN"
	dirName  = ".marksctl"
	fileName = "credentials.json"
)

type record struct {
	Access   string    `json:"access"`
	Username string    `json:"username,omitempty"`
	SavedAt  time.Time `json:"saved_at"`
}

// FileStore is a domain.TokenStore backed by a file on fs.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a store for the file at path.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// DefaultPath is ~/.marksctl/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() (*record, error) {
	b, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return &rec, nil
}

// Token returns the MARKS_TOKEN override, else the stored token, else "".
// An unreadable file counts as no token.
func (s *FileStore) Token() string {
	if env := strings.TrimSpace(os.Getenv(EnvToken)); env != "" {
		return strings.TrimSpace(strings.TrimPrefix(env, "Bearer "))
	}
	rec, err := s.load()
	if err != nil || rec == nil {
		return ""
	}
	return rec.Access
}

// Username returns the account name saved with the token.
func (s *FileStore) Username() string {
	rec, err := s.load()
	if err != nil || rec == nil {
		return ""
	}
	return rec.Username
}

// SaveToken implements domain.TokenStore.
func (s *FileStore) SaveToken(token string) error {
	return s.SaveLogin(token, nil)
}

// SaveLogin writes the token and account name with owner-only permissions.
func (s *FileStore) SaveLogin(token string, account *domain.Account) error {
	rec := record{Access: token, SavedAt: time.Now().UTC()}
	if account != nil {
		rec.Username = account.Username
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, b, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
