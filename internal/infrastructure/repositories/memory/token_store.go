package memory

import (
	"context"
	"sync"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
)

// MemoryTokenStore keeps the token for the lifetime of the process.
type MemoryTokenStore struct {
	token string
	mu    sync.RWMutex
}

func NewMemoryTokenStore() ports.TokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", domain.ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryTokenStore) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// DiscardTokenStore never keeps a token. Servers that proxy logins on
// behalf of many callers use it so no caller's token outlives the request.
type DiscardTokenStore struct{}

func NewDiscardTokenStore() ports.TokenStore {
	return DiscardTokenStore{}
}

func (DiscardTokenStore) Load(ctx context.Context) (string, error) {
	return "", domain.ErrNoToken
}

func (DiscardTokenStore) Save(ctx context.Context, token string) error {
	return nil
}

func (DiscardTokenStore) Clear(ctx context.Context) error {
	return nil
}
