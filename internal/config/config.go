package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config captures tally's runtime settings.
type Config struct {
	Storage   string
	StorePath string
	Theme     string
	LogFile   string // empty disables logging
	LogLevel  zerolog.Level
}

// Storage backends.
const (
	StorageFile   = "file"
	StorageBolt   = "bolt"
	StorageMemory = "memory"
)

const (
	defaultConfigPath = "~/.config/tally/config.toml"
	defaultFilePath   = "~/.local/share/tally/state.toml"
	defaultBoltPath   = "~/.local/share/tally/state.db"
	defaultLogFile    = "~/.local/state/tally/tally.log"
	defaultTheme      = "Nightfox"
	logDisabled       = "-"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Storage:   StorageFile,
		StorePath: mustExpand(defaultFilePath),
		Theme:     defaultTheme,
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  zerolog.InfoLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Storage   string `toml:"storage"`
		StorePath string `toml:"store_path"`
		Theme     string `toml:"theme"`
		LogFile   string `toml:"log_file"`
		LogLevel  string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if err := cfg.SetStorage(raw.Storage, raw.StorePath); err != nil {
		return Config{}, err
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	switch logFile := strings.TrimSpace(raw.LogFile); logFile {
	case "":
	case logDisabled:
		cfg.LogFile = ""
	default:
		cfg.LogFile = mustExpand(logFile)
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return Config{}, fmt.Errorf("parse config: log_level: %w", err)
		}
		cfg.LogLevel = parsed
	}

	return cfg, nil
}

// SetStorage validates backend and sets it along with its path. An empty
// backend keeps the current one; an empty path uses the backend's default.
func (c *Config) SetStorage(backend, path string) error {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		backend = c.Storage
	}
	switch backend {
	case StorageFile, StorageBolt, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q (want file, bolt or memory)", backend)
	}

	changed := backend != c.Storage
	c.Storage = backend

	switch path = strings.TrimSpace(path); {
	case path != "":
		c.StorePath = mustExpand(path)
	case changed || c.StorePath == "":
		c.StorePath = defaultStorePath(backend)
	}
	return nil
}

func defaultStorePath(backend string) string {
	switch backend {
	case StorageBolt:
		return mustExpand(defaultBoltPath)
	case StorageMemory:
		return ""
	default:
		return mustExpand(defaultFilePath)
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

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
