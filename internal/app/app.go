package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/tally/internal/config"
	"github.com/five82/tally/internal/input"
	"github.com/five82/tally/internal/kv"
	"github.com/five82/tally/internal/state"
	"github.com/five82/tally/internal/ui"
)

// Options configure the tally application.
type Options struct {
	ConfigPath string // empty uses ~/.config/tally/config.toml
	Storage    string // overrides the configured backend when set
	StorePath  string // overrides the configured store path when set
}

// Run boots the counter TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Storage != "" || opts.StorePath != "" {
		if err := cfg.SetStorage(opts.Storage, opts.StorePath); err != nil {
			return fmt.Errorf("storage override: %w", err)
		}
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	logger.Info().
		Str("storage", cfg.Storage).
		Str("store_path", cfg.StorePath).
		Str("log_level", cfg.LogLevel.String()).
		Msg("starting")

	store, err := kv.Open(cfg.Storage, cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("close store failed")
		}
	}()

	w := mount(store, logger)
	defer w.unmount()

	uiOpts := ui.Options{
		Store:      w.store,
		Dispatcher: w.dispatcher,
		Keys:       w.keys,
		Prefs:      store,
		ThemeName:  themeName(store, cfg.Theme),
		Logger:     logger,
	}
	if err := ui.Run(ctx, uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	logger.Info().Int("count", w.store.Count()).Msg("exiting")
	return nil
}

// widget is a mounted counter: restored state, its persistence mirror and
// its keyboard binding.
type widget struct {
	store      *state.Store
	dispatcher *input.Dispatcher
	keys       input.KeyMap
	binding    *input.Binding
	stopMirror func()
}

// mount restores the counter from slot and attaches its side effects.
func mount(slot kv.Store, log zerolog.Logger) *widget {
	store, restored := state.Restore(slot)
	log.Debug().Bool("restored", restored).Int("count", store.Count()).Msg("counter mounted")

	dispatcher := input.NewDispatcher()
	keys := input.DefaultKeyMap()

	return &widget{
		store:      store,
		dispatcher: dispatcher,
		keys:       keys,
		stopMirror: state.Mirror(store, slot, log),
		binding:    input.Bind(dispatcher, store, keys),
	}
}

// unmount detaches the keyboard listener and stops mirroring. The persisted
// value is left in place.
func (w *widget) unmount() {
	w.binding.Close()
	w.stopMirror()
}

// themeName prefers a saved theme over the configured fallback.
func themeName(prefs kv.Store, fallback string) string {
	saved, ok, err := prefs.Get(ui.ThemePrefKey)
	if err != nil || !ok || strings.TrimSpace(saved) == "" {
		return fallback
	}
	return strings.TrimSpace(saved)
}
