package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	ErrFileNotFound = errors.New("collection file not found")
	ErrCorrupt      = errors.New("collection file is corrupt")
)

// BackupSuffix is appended to the collection path for the previous-version copy.
const BackupSuffix = ".bak"

// JSONStore persists a whole collection as an indented JSON array in one file.
// Writes go to a temporary file in the same directory which is then renamed
// over the original, so readers never observe a partial file.
type JSONStore[T any] struct {
	fs     afero.Fs
	path   string
	backup bool
}

func NewJSONStore[T any](fs afero.Fs, path string, backup bool) *JSONStore[T] {
	return &JSONStore[T]{
		fs:     fs,
		path:   path,
		backup: backup,
	}
}

func (s *JSONStore[T]) Path() string {
	return s.path
}

// Load reads the collection. An empty file yields an empty collection.
func (s *JSONStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return items, nil
}

// Save rewrites the whole collection.
func (s *JSONStore[T]) Save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}

	if s.backup {
		if err := s.writeBackup(); err != nil {
			return err
		}
	}

	return s.replace(dir, data)
}

func (s *JSONStore[T]) writeBackup() error {
	previous, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s for backup: %w", s.path, err)
	}

	if err := afero.WriteFile(s.fs, s.path+BackupSuffix, previous, 0o644); err != nil {
		return fmt.Errorf("write backup %s: %w", s.path+BackupSuffix, err)
	}
	return nil
}

func (s *JSONStore[T]) replace(dir string, data []byte) error {
	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	cleanup := func() { _ = s.fs.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := s.fs.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
