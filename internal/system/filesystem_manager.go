package system

import "os"

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	EnsureDirectory(path string, perms os.FileMode) error
	WriteFile(path string, content []byte, perms os.FileMode) error
	ListDirectory(path string) ([]Entry, error)
}

// Entry describes one directory entry as seen by a listing
type Entry struct {
	Name  string
	Size  int64
	IsDir bool
}
