package kv

import (
	"fmt"
	"strings"
)

// Store is a durable string key-value store.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindBolt   = "bolt"
	KindMemory = "memory"
)

// Open returns the backend named by kind, rooted at path.
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindFile, "":
		return OpenFile(path)
	case KindBolt:
		return OpenBolt(path)
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

// Memory is a map-backed Store.
type Memory struct {
	values map[string]string
	sets   int
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	m.sets++
	return nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

// Writes returns how many times Set has been called.
func (m *Memory) Writes() int { return m.sets }
