package storage

import (
	"gtt/internal/config"
	"gtt/internal/domain"
)

// Storage persists and loads timing reports (e.g. for the show and view commands).
type Storage interface {
	Save(report domain.Report) error
	Load() (*domain.Report, error)
}

// JSONStorage stores the report in a JSON file at the configured path.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads/writes the config's JSON report path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{path: cfg.GetJSONPath()}
}

// NewJSONFile returns a Storage for an explicit path.
func NewJSONFile(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the file the storage reads and writes
func (s *JSONStorage) Path() string {
	return s.path
}

var _ Storage = (*JSONStorage)(nil)
