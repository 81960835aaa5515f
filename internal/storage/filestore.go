package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/runnerr0/mindwell/internal/errs"
)

const fileExt = ".json"

// FileStore implements KV with one JSON file per key inside a directory.
// Writes go to a temp file in the same directory and are renamed into place.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a FileStore rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the value files.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, &errs.StorageError{Key: key, Op: "get", Err: err}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, &errs.StorageError{Key: key, Op: "get", Err: err}
	}
	return string(b), true, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return &errs.StorageError{Key: key, Op: "set", Err: err}
	}
	if err := writeFileAtomic(p, []byte(value), 0o600); err != nil {
		return &errs.StorageError{Key: key, Op: "set", Err: err}
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return &errs.StorageError{Key: key, Op: "delete", Err: err}
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &errs.StorageError{Key: key, Op: "delete", Err: err}
	}
	return nil
}

func (s *FileStore) Keys(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &errs.StorageError{Op: "keys", Err: err}
	}
	keys := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, fileExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(keys)
	return keys, nil
}

// Stats reports per-key file sizes and modification times.
func (s *FileStore) Stats(ctx context.Context) (*Stats, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{}
	for _, k := range keys {
		info, err := os.Stat(filepath.Join(s.dir, k+fileExt))
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", k, err)
		}
		stats.Keys = append(stats.Keys, KeySize{Key: k, Bytes: info.Size(), UpdatedAt: info.ModTime()})
		stats.TotalKeys++
		stats.TotalBytes += info.Size()
	}
	return stats, nil
}

func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp_value_*"+fileExt)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
