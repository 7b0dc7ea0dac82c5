// Package credentials holds the bearer token obtained at login.
//
// A store is process-wide: written on login, cleared on logout or on any 401,
// and read before every authenticated call. Concurrent Save and Clear calls
// resolve as last write wins.
package credentials

import "sync"

// UserInfo identifies the signed-in account.
type UserInfo struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type Store interface {
	// Token returns "" when no credential is stored.
	Token() string
	Save(token string, info *UserInfo) error
	UserInfo() *UserInfo
	Clear() error
	HasToken() bool
}

type session struct {
	Token string    `yaml:"token"`
	User  *UserInfo `yaml:"user,omitempty"`
}

type MemoryStore struct {
	mu      sync.RWMutex
	current session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

func (s *MemoryStore) Save(token string, info *UserInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session{Token: token, User: copyInfo(info)}
	return nil
}

func (s *MemoryStore) UserInfo() *UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyInfo(s.current.User)
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session{}
	return nil
}

func (s *MemoryStore) HasToken() bool {
	return s.Token() != ""
}

func copyInfo(info *UserInfo) *UserInfo {
	if info == nil {
		return nil
	}
	c := *info
	return &c
}
