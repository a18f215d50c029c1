// Package credentials persists the bearer token across process restarts.
// Every backend holds a single value under a fixed key.
package credentials

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when no token has been persisted.
var ErrNotFound = errors.New("credential not found")

type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// MemoryStore keeps the token for the lifetime of the process only.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", ErrNotFound
	}
	return m.token, nil
}

func (m *MemoryStore) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Token adapts a Store to the API client's token source, treating a missing
// token as anonymous rather than an error.
func Token(ctx context.Context, s Store) (string, error) {
	token, err := s.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return token, err
}
