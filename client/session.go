package client

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"safetravelbuddy/utils"
)

const sessionFileName = "session-token"

// SessionStore persists the opaque session token across runs. The token's
// existence only means "possibly authenticated" - validity is confirmed
// against /api/user/me on bootstrap.
type SessionStore struct {
	dir string
}

func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{dir: dir}
}

func (s *SessionStore) Save(token string) error {
	err := utils.CreateDirIfNotExist(s.dir)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(s.filePath(), []byte(token), 0600)
}

// Load returns the persisted token, or "" when none is saved.
func (s *SessionStore) Load() (string, error) {
	if !utils.FileExist(s.filePath()) {
		return "", nil
	}

	token, err := ioutil.ReadFile(s.filePath())
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(token)), nil
}

func (s *SessionStore) Clear() error {
	err := os.Remove(s.filePath())
	if os.IsNotExist(err) {
		return nil
	}

	return err
}

func (s *SessionStore) filePath() string {
	return filepath.Join(s.dir, sessionFileName)
}
