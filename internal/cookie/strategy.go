package cookie

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Strategy represents a means of reading and writing the jar contents
type Strategy interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStrategy reads/persists the jar to/from a file at the provided path
type FileStrategy struct {
	fs   afero.Fs
	path string
}

// NewFileStrategy returns a new FileStrategy given a location on disk to store data
func NewFileStrategy(fs afero.Fs, path string) *FileStrategy {
	return &FileStrategy{fs, path}
}

// Read reads data from the file at the provided path
func (s *FileStrategy) Read() ([]byte, error) {
	if _, err := s.fs.Stat(s.path); os.IsNotExist(err) {
		return []byte{}, nil
	}
	return afero.ReadFile(s.fs, s.path)
}

// Write writes data to the file at the provided path
func (s *FileStrategy) Write(data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, data, 0600)
}

// MemoryStrategy keeps the jar contents in memory
type MemoryStrategy struct {
	mu   sync.Mutex
	data []byte
}

// Read returns the last written data
func (s *MemoryStrategy) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte{}, s.data...), nil
}

// Write replaces the stored data
func (s *MemoryStrategy) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte{}, data...)
	return nil
}
