// Package storage keeps the CLI client's login session on disk between runs.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotLoggedIn is returned when a command needs a session but none is stored.
var ErrNotLoggedIn = errors.New("not logged in, run the login command first")

// LocalStorage is the session saved by a successful login.
type LocalStorage struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	Token    string `json:"token"`

	path string
	mu   sync.Mutex
}

// DefaultFile is the session file name used when no path is given.
const DefaultFile = "growth_mindset_session.json"

// New returns storage bound to path. Nothing is read until Load.
func New(path string) *LocalStorage {
	if path == "" {
		path = DefaultFile
	}
	return &LocalStorage{path: path}
}

// Path returns the file backing the storage.
func (ls *LocalStorage) Path() string {
	return ls.path
}

// Load reads the session file. A missing file leaves the storage empty.
func (ls *LocalStorage) Load() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	f, err := os.Open(ls.path)
	if err != nil {
		if os.IsNotExist(err) {
			ls.reset()
			return nil
		}
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(ls); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	return nil
}

// Save writes the session file with owner-only permissions.
func (ls *LocalStorage) Save() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if dir := filepath.Dir(ls.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(ls.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(ls)
}

// SetSession replaces the stored session.
func (ls *LocalStorage) SetSession(server, username string, userID int64, token string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.Server = server
	ls.Username = username
	ls.UserID = userID
	ls.Token = token
}

// BearerToken returns the stored token or ErrNotLoggedIn.
func (ls *LocalStorage) BearerToken() (string, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.Token == "" {
		return "", ErrNotLoggedIn
	}
	return ls.Token, nil
}

// Clear forgets the session and removes the file.
func (ls *LocalStorage) Clear() error {
	ls.mu.Lock()
	ls.reset()
	ls.mu.Unlock()

	if err := os.Remove(ls.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (ls *LocalStorage) reset() {
	ls.Server = ""
	ls.Username = ""
	ls.UserID = 0
	ls.Token = ""
}
