package system

import (
	"errors"
	"os"
	"path/filepath"
)

var errNotDirectory = errors.New("exists but is not a directory")

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// EnsureDirectory creates a directory and any missing parents.
// If the directory already exists, it does nothing
func (fs *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return &IOError{Op: "mkdir", Path: path, Err: errNotDirectory}
		}
		return nil
	} else if !os.IsNotExist(err) {
		return &IOError{Op: "mkdir", Path: path, Err: err}
	}

	if err := os.MkdirAll(path, perms); err != nil {
		return &IOError{Op: "mkdir", Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

// WriteFile creates or truncates path and writes content in one pass.
// The file is closed on every return path; a failed close is reported.
func (fs *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perms)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: unwrapPathError(err)}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: unwrapPathError(cerr)}
		}
	}()

	if _, err := file.Write(content); err != nil {
		return &IOError{Op: "write", Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

// ListDirectory lists all entries in a directory together with their sizes
func (fs *FileSystem) ListDirectory(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, &IOError{Op: "readdir", Path: path, Err: unwrapPathError(err)}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			return nil, &IOError{Op: "stat", Path: filepath.Join(path, de.Name()), Err: unwrapPathError(err)}
		}
		entries = append(entries, Entry{
			Name:  de.Name(),
			Size:  info.Size(),
			IsDir: de.IsDir(),
		})
	}

	return entries, nil
}

// unwrapPathError strips the *os.PathError layer so the path is not
// printed twice once it is wrapped in an IOError.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
