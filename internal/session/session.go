// Package session persists the operator console's login between runs: one
// JSON file holding one tagged principal, hydrated once at startup and
// cleared on logout. Deleting the file is the whole logout story; tokens
// cannot be revoked server-side.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charhateom/qrakhsa/internal/auth"
)

// Session is the persisted principal plus its bearer token.
type Session struct {
	Kind     auth.Kind `json:"kind"`
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Token    string    `json:"token"`
}

func (s Session) IsAdmin() bool { return s.Kind == auth.KindAdmin }

var ErrNoSession = errors.New("no session")

// Store reads and writes the session file. Zero value is unusable; build one
// with NewStore or point Path somewhere explicit in tests.
type Store struct {
	Path string
}

// NewStore places the session file under the user config dir, the same spot
// other CLI tools keep their credentials.
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return &Store{Path: filepath.Join(dir, "qrakhsa", "session.json")}, nil
}

// Load hydrates the persisted session. A missing file means ErrNoSession; a
// corrupt file is treated the same way, there is nothing to salvage.
func (s *Store) Load() (Session, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, ErrNoSession
		}
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	// The file holds a live bearer token; keep it owner-only.
	return os.WriteFile(s.Path, raw, 0o600)
}

// Clear forgets the session. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
