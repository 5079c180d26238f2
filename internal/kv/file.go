package kv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// File is a Store persisted as a flat TOML table of string values.
type File struct {
	path   string
	values map[string]string
}

// OpenFile loads the TOML document at path. A missing or unparsable file
// yields an empty store; the file is created on the first Set.
func OpenFile(path string) (*File, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}

	f := &File{path: resolved, values: make(map[string]string)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	values := make(map[string]string)
	if err := toml.Unmarshal(bytes, &values); err != nil {
		return f, nil // Graceful degradation
	}
	f.values = values
	return f, nil
}

// Path returns the resolved file path.
func (f *File) Path() string { return f.path }

// Get implements Store.
func (f *File) Get(key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements Store. The whole document is rewritten.
func (f *File) Set(key, value string) error {
	if cur, ok := f.values[key]; ok && cur == value {
		return nil
	}
	f.values[key] = value

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	bytes, err := toml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// Close implements Store.
func (f *File) Close() error { return nil }

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
