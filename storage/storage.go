// Package storage provides the filesystem primitives the generator writes
// through: directory creation, create-or-truncate, and append.
package storage

import (
	"fmt"
	"os"
)

// Storage is the set of write operations a generation run needs.
type Storage interface {
	// CreateDir creates path and any missing parents. Existing directories
	// are not an error.
	CreateDir(path string) error

	// CreateFile creates path, or truncates it if it exists, and writes
	// content.
	CreateFile(path, content string) error

	// AppendFile appends content to the end of path.
	AppendFile(path, content string) error
}

// Disk writes to the local filesystem.
type Disk struct{}

// CreateDir implements Storage.
func (Disk) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", path, err)
	}
	return nil
}

// CreateFile implements Storage.
func (Disk) CreateFile(path, content string) error {
	return writeFile(path, content, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// AppendFile implements Storage.
func (Disk) AppendFile(path, content string) error {
	return writeFile(path, content, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

func writeFile(path, content string, flag int) error {
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
