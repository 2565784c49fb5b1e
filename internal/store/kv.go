// Package store persists calculation records through a flat key-value
// blob store. The KV interface mirrors the host-platform contract
// (get/set/remove); FileKV is the on-disk implementation.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// blobFileExtension is the file extension used for stored blobs.
const blobFileExtension = ".json"

// KV is an opaque key-value blob store with best-effort semantics.
// Implementations must treat Remove of an absent key as a no-op.
type KV interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set stores the blob under key, overwriting any previous value.
	Set(key string, blob []byte) error

	// Remove deletes the blob under key. Idempotent.
	Remove(key string) error
}

// FileKV stores each key as one JSON blob file in a directory.
// Writes go through a temp file and rename for atomicity.
// Thread-safe for concurrent access.
type FileKV struct {
	// directory is the blob directory path.
	directory string

	// mu protects concurrent file operations.
	mu sync.RWMutex
}

// NewFileKV creates a file-backed KV store rooted at directory,
// creating the directory if needed.
func NewFileKV(directory string) (*FileKV, error) {
	if directory == "" {
		return nil, ErrEmptyDirectory
	}

	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &FileKV{directory: directory}, nil
}

// Get retrieves the blob stored under key.
// Returns ErrKeyNotFound if no blob exists.
func (s *FileKV) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.keyToFilePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read blob file: %w", err)
	}

	return data, nil
}

// Set stores a blob under key, overwriting any existing value.
func (s *FileKV) Set(key string, blob []byte) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.keyToFilePath(key)

	// Write to a temporary file first, then rename for atomicity.
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, blob, 0600); err != nil {
		return fmt.Errorf("failed to write blob file: %w", err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename blob file: %w", err)
	}

	return nil
}

// Remove deletes the blob under key. Absent keys are not an error.
func (s *FileKV) Remove(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.keyToFilePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob file: %w", err)
	}

	return nil
}

// Directory returns the blob directory path.
func (s *FileKV) Directory() string {
	return s.directory
}

// keyToFilePath converts a key to a filesystem-safe blob path.
func (s *FileKV) keyToFilePath(key string) string {
	safeKey := strings.ReplaceAll(key, "/", "_")
	safeKey = strings.ReplaceAll(safeKey, "\\", "_")
	safeKey = strings.ReplaceAll(safeKey, ":", "_")
	return filepath.Join(s.directory, safeKey+blobFileExtension)
}
