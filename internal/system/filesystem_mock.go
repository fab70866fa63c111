package system

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// MockFileSystem is a mock of the FileSystem for testing purposes.
// It captures written files in memory and implements FileSystemManager.
type MockFileSystem struct {
	mu           sync.Mutex
	WrittenFiles map[string][]byte
	// WriteOrder records every WriteFile path in call order
	WriteOrder []string
	// Directories records every EnsureDirectory path
	Directories []string
	// FailPaths makes WriteFile, EnsureDirectory or ListDirectory fail for the given path
	FailPaths map[string]error
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		WrittenFiles: make(map[string][]byte),
		FailPaths:    make(map[string]error),
	}
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailPaths[path]; ok {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	m.WrittenFiles[path] = append([]byte(nil), content...)
	m.WriteOrder = append(m.WriteOrder, path)
	return nil
}

// EnsureDirectory records the directory without touching disk.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailPaths[path]; ok {
		return &IOError{Op: "mkdir", Path: path, Err: err}
	}
	m.Directories = append(m.Directories, path)
	return nil
}

// ListDirectory returns the captured files directly under path.
// Entries come back in reverse name order so callers cannot rely on it.
func (m *MockFileSystem) ListDirectory(path string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailPaths[path]; ok {
		return nil, &IOError{Op: "readdir", Path: path, Err: err}
	}

	var entries []Entry
	for p, content := range m.WrittenFiles {
		if filepath.Dir(p) != filepath.Clean(path) {
			continue
		}
		entries = append(entries, Entry{Name: filepath.Base(p), Size: int64(len(content))})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name > entries[j].Name })
	return entries, nil
}
