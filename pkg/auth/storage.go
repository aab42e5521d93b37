package auth

import "sync"

// Storage persists the single OAuth2 token owned by an Authenticator.
//
// Load returns (nil, nil) when no usable token is stored — including when a
// backing file is absent or its content fails to parse. Persistence-layer
// corruption never propagates as an error to callers that only want to know
// whether a token exists. Clear is idempotent.
type Storage interface {
	Store(token *TokenInfo) error
	Load() (*TokenInfo, error)
	Clear() error
}

// MemoryStorage keeps the token in process memory. Safe for concurrent use.
type MemoryStorage struct {
	mu    sync.RWMutex
	token *TokenInfo
}

// NewMemoryStorage returns an empty in-memory token store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Store replaces the stored token.
func (s *MemoryStorage) Store(token *TokenInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *token
	s.token = &copied
	return nil
}

// Load returns the stored token, or (nil, nil) when empty.
func (s *MemoryStorage) Load() (*TokenInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return nil, nil
	}
	copied := *s.token
	return &copied, nil
}

// Clear removes the stored token.
func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	return nil
}
