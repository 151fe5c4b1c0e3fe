package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// FileStore keeps one JSON file per key under a data directory.
type FileStore struct {
	mu      sync.Mutex
	dataDir string
	log     zerolog.Logger
}

func NewFileStore(dataDir string, logger zerolog.Logger) *FileStore {
	if dataDir == "" {
		dataDir = "data"
	}
	return &FileStore{dataDir: dataDir, log: logger}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

func (s *FileStore) ensureDir() error {
	return os.MkdirAll(s.dataDir, 0755)
}

// Get reads and decodes the file for key. A missing file or undecodable
// content reports found=false; only other I/O failures surface as errors.
func (s *FileStore) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Debug().Str("key", key).Err(err).Msg("discarding undecodable payload")
		return false, nil
	}
	return true, nil
}

// Set writes the full payload for key.
func (s *FileStore) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0644)
}

// Remove deletes the file for key if it exists.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear deletes every JSON payload in the data directory.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dataDir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
