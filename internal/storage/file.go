// Package storage appends generated passwords to plain text files.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/passgen/internal/common"
)

// Validation errors.
var (
	ErrEmptyPath     = errors.New("file path cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrMultiline     = errors.New("password cannot contain a line break")
)

// FileStore appends passwords to a text file, one per line.
type FileStore struct {
	path string
}

// NewFileStore creates a store for path. The file is created on first append.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: %w", common.ErrFileWrite, ErrEmptyPath)
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the store writes to.
func (s *FileStore) Path() string {
	return s.path
}

// Append writes each password as its own line at the end of the file.
// Nothing is written if any password is invalid.
func (s *FileStore) Append(passwords ...string) error {
	var sb strings.Builder
	for i, pw := range passwords {
		if err := validatePassword(pw); err != nil {
			return fmt.Errorf("%w: password %d: %w", common.ErrFileWrite, i+1, err)
		}
		sb.WriteString(pw)
		sb.WriteByte('\n')
	}
	if sb.Len() == 0 {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("%w: failed to create directory: %w", common.ErrFileWrite, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %w", common.ErrFileWrite, s.path, err)
	}

	if _, err := f.WriteString(sb.String()); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: failed to write %s: %w", common.ErrFileWrite, s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %w", common.ErrFileWrite, s.path, err)
	}
	return nil
}

func validatePassword(pw string) error {
	if pw == "" {
		return ErrEmptyPassword
	}
	if strings.ContainsAny(pw, "\r\n") {
		return ErrMultiline
	}
	return nil
}
