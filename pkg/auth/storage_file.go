package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage persists the token as one JSON file, so a token survives
// process restarts. Writes are atomic from a same-process reader's
// perspective (write-to-temp-then-rename); there is no cross-process locking,
// so concurrent writers from multiple processes get last-write-wins at best.
type FileStorage struct {
	path string
}

// NewFileStorage returns a file-backed token store. An empty path defaults to
// euroleague/token.json under the user's config directory. Parent directories
// are created lazily on the first Store.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user config directory: %w", err)
		}
		path = filepath.Join(configDir, "euroleague", "token.json")
	}
	return &FileStorage{path: path}, nil
}

// Path returns the backing file path.
func (s *FileStorage) Path() string { return s.path }

// Store writes the full serialized token before any reader can observe a
// half-written file.
func (s *FileStorage) Store(token *TokenInfo) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace token file: %w", err)
	}
	return nil
}

// Load reads the token back. A missing or unparsable file yields (nil, nil)
// rather than an error.
func (s *FileStorage) Load() (*TokenInfo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token TokenInfo
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, nil // corrupt file is treated as no token
	}
	if token.AccessToken == "" {
		return nil, nil
	}
	return &token, nil
}

// Clear deletes the token file. Clearing an already-empty store is not an
// error.
func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
