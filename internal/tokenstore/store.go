// Package tokenstore persists the session bearer token between runs.
package tokenstore

import (
	"errors"
	"sync"
)

// TokenKey is the name of the persisted slot.
const TokenKey = "keima_session_token"

var ErrNoToken = errors.New("no persisted session token")

// Store is a single persisted slot holding the bearer token.
type Store interface {
	// Load returns ErrNoToken when nothing is persisted.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryStore keeps the token in memory only.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", ErrNoToken
	}
	return m.token, nil
}

func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
