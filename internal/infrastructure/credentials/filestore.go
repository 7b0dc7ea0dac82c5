package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps the session in a YAML file so it survives between CLI runs.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Token() string {
	sess, err := s.read()
	if err != nil {
		return ""
	}
	return sess.Token
}

func (s *FileStore) UserInfo() *UserInfo {
	sess, err := s.read()
	if err != nil {
		return nil
	}
	return sess.User
}

func (s *FileStore) HasToken() bool {
	return s.Token() != ""
}

func (s *FileStore) Save(token string, info *UserInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(session{Token: token, User: copyInfo(info)})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (s *FileStore) read() (session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess session
	data, err := os.ReadFile(s.path)
	if err != nil {
		return sess, err
	}
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return sess, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}
