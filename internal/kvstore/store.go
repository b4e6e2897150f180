package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// entryFileExtension is the file extension used for stored entries.
const entryFileExtension = ".json"

// Common store errors.
var (
	ErrNotFound           = errors.New("key not found")
	ErrInvalidKey         = errors.New("key cannot be empty")
	ErrReservedKey        = errors.New("key is reserved")
	ErrInvalidData        = errors.New("value is not valid JSON")
	ErrIncompatibleSchema = errors.New("incompatible store schema version")
	ErrCorruptMeta        = errors.New("unreadable store metadata")
)

// Store is a string-keyed store of JSON values.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Delete(key string) error
	Clear() error
	Keys() ([]string, error)
}

// FileStore keeps each key in its own JSON file under a directory.
// Thread-safe within a process; the lockfile serializes writers across
// processes.
type FileStore struct {
	// directory is the data directory path.
	directory string

	// mu protects concurrent access to file operations.
	mu sync.RWMutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (creating if needed) a store rooted at directory and
// checks its schema version. A store written by a different major schema
// version returns ErrIncompatibleSchema.
func NewFileStore(directory string) (*FileStore, error) {
	if directory == "" {
		return nil, errors.New("data directory cannot be empty")
	}

	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &FileStore{directory: directory}

	unlock, err := acquireFileLock(s.lockFilePath())
	if err != nil {
		return nil, fmt.Errorf("acquiring file lock: %w", err)
	}
	defer unlock()

	if metaErr := ensureMeta(directory); metaErr != nil {
		return nil, metaErr
	}

	return s, nil
}

// Get returns the raw JSON value stored under key.
// Returns ErrNotFound if the key has never been set or was deleted.
func (s *FileStore) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.keyToFilePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read entry file: %w", err)
	}

	var entry Entry
	if unmarshalErr := json.Unmarshal(raw, &entry); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal entry %q: %w", key, unmarshalErr)
	}

	return entry.Data, nil
}

// Set stores data under key, overwriting any previous value.
// data must be valid JSON.
func (s *FileStore) Set(key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if !json.Valid(data) {
		return ErrInvalidData
	}

	unlock, lockErr := acquireFileLock(s.lockFilePath())
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	entryData, err := json.MarshalIndent(NewEntry(key, data), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	return writeFileAtomic(s.keyToFilePath(key), entryData)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	unlock, lockErr := acquireFileLock(s.lockFilePath())
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.keyToFilePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete entry file: %w", err)
	}

	return nil
}

// Clear removes every stored entry. The schema metadata is kept.
func (s *FileStore) Clear() error {
	unlock, lockErr := acquireFileLock(s.lockFilePath())
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.entryFiles()
	if err != nil {
		return err
	}

	for _, name := range names {
		if removeErr := os.Remove(filepath.Join(s.directory, name)); removeErr != nil && !os.IsNotExist(removeErr) {
			return fmt.Errorf("failed to remove entry file %s: %w", name, removeErr)
		}
	}

	return nil
}

// Keys returns the logical keys currently stored, sorted.
// Files that cannot be read or decoded are skipped.
func (s *FileStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names, err := s.entryFiles()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(names))
	for _, name := range names {
		raw, readErr := os.ReadFile(filepath.Join(s.directory, name))
		if readErr != nil {
			continue
		}
		var entry Entry
		if json.Unmarshal(raw, &entry) != nil || entry.Key == "" {
			continue
		}
		keys = append(keys, entry.Key)
	}

	slices.Sort(keys)
	return keys, nil
}

// Directory returns the data directory path.
func (s *FileStore) Directory() string {
	return s.directory
}

// entryFiles lists entry file names, excluding metadata and temp files.
func (s *FileStore) entryFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(s.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != entryFileExtension || de.Name() == metaFileName {
			continue
		}
		names = append(names, de.Name())
	}
	return names, nil
}

// lockFilePath returns the path to the directory-wide lockfile.
func (s *FileStore) lockFilePath() string {
	return filepath.Join(s.directory, ".lock")
}

// keyToFilePath converts a validated key to its entry file path.
func (s *FileStore) keyToFilePath(key string) string {
	return filepath.Join(s.directory, key+entryFileExtension)
}

// validateKey rejects empty keys, the metadata file name and keys holding
// path separators or drive colons.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if strings.ContainsAny(key, `/\:`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidKey, key)
	}
	if key+entryFileExtension == metaFileName {
		return fmt.Errorf("%w: %s", ErrReservedKey, key)
	}
	return nil
}

// writeFileAtomic writes to a temporary file first, then renames it.
func writeFileAtomic(path string, data []byte) error {
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
